package form

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/retirmentaudit/retirement-audit-launch/pkg/dateutil"
)

// ErrAborted is returned when the user quits the form.
var ErrAborted = errors.New("form aborted")

// New builds the interactive form, writing into a. Groups for the spouse and for accounts the
// user did not select are hidden.
func New(a *Answers) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewNote().
				Title("Retirement Projection").
				Description("Project your savings and home equity to a target age.\nAmounts are in dollars; rates are yearly percentages."),
			huh.NewInput().
				Title("Target retirement age").
				Value(&a.TargetAge).
				Validate(validateWhole),
			huh.NewConfirm().
				Title("Include a spouse?").
				Affirmative("Yes").
				Negative("No").
				Value(&a.HasSpouse),
		),
	}

	for _, owner := range domain.Owners {
		groups = append(groups, personGroups(a, owner)...)
	}

	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Current home value").
			Value(&a.HomeValue).
			Validate(validateAmount),
		huh.NewInput().
			Title("Mortgage balance").
			Value(&a.MortgageBalance).
			Validate(validateAmount),
		huh.NewInput().
			Title("Home appreciation rate (%)").
			Description("0 to 10").
			Value(&a.AppreciationRate).
			Validate(validateRate),
	).Title("Home"))

	return huh.NewForm(groups...).WithTheme(huh.ThemeCharm())
}

func personGroups(a *Answers, owner domain.Owner) []*huh.Group {
	person := a.People[owner]
	hidden := func() bool { return owner == domain.OwnerSpouse && !a.HasSpouse }

	options := make([]huh.Option[domain.AccountKind], 0, len(domain.AccountKinds))
	for _, kind := range domain.AccountKinds {
		options = append(options, huh.NewOption(kind.Label(), kind))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title(owner.Label()+": current age").
				Description("A whole number or a birth date (YYYY-MM-DD)").
				Value(&person.Age).
				Validate(validateAge),
			huh.NewMultiSelect[domain.AccountKind]().
				Title(owner.Label()+": accounts").
				Options(options...).
				Value(&person.Kinds),
		).WithHideFunc(hidden),
	}

	for _, kind := range domain.AccountKinds {
		kind := kind
		in := person.Accounts[kind]
		key := domain.AccountKey{Owner: owner, Kind: kind}

		contribution := huh.NewInput().
			Title("Annual contribution").
			Value(&in.Contribution).
			Validate(validateAmount)
		if limit, ok := domain.ContributionLimit(kind); ok {
			contribution = contribution.Description(fmt.Sprintf("Up to $%s", limit.StringFixed(0)))
		}

		fields := []huh.Field{
			huh.NewInput().
				Title("Current balance").
				Value(&in.Balance).
				Validate(validateAmount),
			contribution,
		}
		if kind.HasEmployerMatch() {
			fields = append(fields, huh.NewInput().
				Title("Employer match per year").
				Value(&in.EmployerMatch).
				Validate(validateAmount))
		}
		fields = append(fields, huh.NewInput().
			Title("Expected growth rate (%)").
			Description("0 to 20").
			Value(&in.GrowthRate).
			Validate(validateRate))

		groups = append(groups, huh.NewGroup(fields...).
			Title(key.Label()).
			WithHideFunc(func() bool { return hidden() || !person.Has(kind) }))
	}
	return groups
}

// Run shows the form and parses the answers.
func Run(a *Answers) (*domain.ProjectionRequest, error) {
	if err := New(a).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("run form: %w", err)
	}
	return a.Request()
}

func validateWhole(s string) error {
	_, err := parseWhole("value", s)
	return plain(err)
}

func validateAge(s string) error {
	_, err := dateutil.ParseAge(s, nowFunc())
	return err
}

func validateAmount(s string) error {
	_, err := parseAmount("value", s)
	return plain(err)
}

func validateRate(s string) error {
	_, err := parseRate("value", s)
	return plain(err)
}

// plain drops the sentinel prefix for inline field errors.
func plain(err error) error {
	if err == nil {
		return nil
	}
	return errors.New("please enter a number")
}
