package server

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/retirmentaudit/retirement-audit-launch/internal/identity"
	"github.com/retirmentaudit/retirement-audit-launch/internal/output"
	"github.com/retirmentaudit/retirement-audit-launch/internal/session"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// credentials is the signup/login request body.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is returned by signup and login.
type authResponse struct {
	User  identity.User `json:"user"`
	Token string        `json:"token"`
}

// projectionInput is the projection request body. It differs from domain.ProjectionRequest
// only in that the home reference age may be omitted.
type projectionInput struct {
	TargetAge int                   `json:"target_age"`
	Accounts  []domain.AccountInput `json:"accounts"`
	Home      homeInput             `json:"home"`
}

type homeInput struct {
	HomeValue           decimal.Decimal `json:"home_value"`
	MortgageBalance     decimal.Decimal `json:"mortgage_balance"`
	AppreciationRatePct decimal.Decimal `json:"appreciation_rate_pct"`
	ReferenceAge        *int            `json:"reference_age"`
}

// request builds the projection request. A missing reference age defaults to the self
// account holder's age, matching the YAML input and the terminal form. Without a self
// account it is required unless there is no home.
func (in projectionInput) request() (*domain.ProjectionRequest, error) {
	req := &domain.ProjectionRequest{
		TargetAge: in.TargetAge,
		Accounts:  in.Accounts,
		Home: domain.HomeEquityInput{
			HomeValue:           in.Home.HomeValue,
			MortgageBalance:     in.Home.MortgageBalance,
			AppreciationRatePct: in.Home.AppreciationRatePct,
		},
	}
	if in.Home.ReferenceAge != nil {
		req.Home.ReferenceAge = *in.Home.ReferenceAge
		return req, nil
	}
	for _, a := range in.Accounts {
		if a.Key.Owner == domain.OwnerSelf {
			req.Home.ReferenceAge = a.CurrentAge
			return req, nil
		}
	}
	if !in.Home.HomeValue.IsZero() || !in.Home.MortgageBalance.IsZero() {
		return nil, fmt.Errorf("%w: home reference_age is required without a self account", domain.ErrInvalidInput)
	}
	return req, nil
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSignup(ctx *fasthttp.RequestCtx) {
	var creds credentials
	if err := json.Unmarshal(ctx.PostBody(), &creds); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	user, err := s.users.CreateUser(s.baseCtx, creds.Email, creds.Password)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	s.respondWithSession(ctx, fasthttp.StatusCreated, user)
}

func (s *Server) handleLogin(ctx *fasthttp.RequestCtx) {
	var creds credentials
	if err := json.Unmarshal(ctx.PostBody(), &creds); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	user, err := s.users.Authenticate(s.baseCtx, creds.Email, creds.Password)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	s.respondWithSession(ctx, fasthttp.StatusOK, user)
}

func (s *Server) respondWithSession(ctx *fasthttp.RequestCtx, status int, user identity.User) {
	token, err := s.sessions.Issue(user)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, status, authResponse{User: user, Token: token})
}

func (s *Server) handleMe(ctx *fasthttp.RequestCtx) {
	claims, ok := s.authenticate(ctx)
	if !ok {
		return
	}
	if claims == nil {
		writeError(ctx, fasthttp.StatusUnauthorized, "Missing or invalid token")
		return
	}
	user, err := s.users.GetUserByID(s.baseCtx, claims.Subject)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, user)
}

// authenticate verifies an optional bearer token. It returns nil claims when no token was sent
// and ok=false after writing a 401 for a token that does not verify.
func (s *Server) authenticate(ctx *fasthttp.RequestCtx) (*session.Claims, bool) {
	token := session.BearerToken(string(ctx.Request.Header.Peek(fasthttp.HeaderAuthorization)))
	if token == "" {
		return nil, true
	}
	claims, err := s.sessions.Verify(token)
	if err != nil {
		writeError(ctx, fasthttp.StatusUnauthorized, "Missing or invalid token")
		return nil, false
	}
	return claims, true
}

// project decodes, validates and runs a projection request body.
func (s *Server) project(ctx *fasthttp.RequestCtx) (*domain.ProjectionResult, bool) {
	claims, ok := s.authenticate(ctx)
	if !ok {
		return nil, false
	}

	var in projectionInput
	if err := json.Unmarshal(ctx.PostBody(), &in); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	req, err := in.request()
	if err != nil {
		s.fail(ctx, err)
		return nil, false
	}
	if err := s.parser.ValidateRequest(req); err != nil {
		s.fail(ctx, err)
		return nil, false
	}

	result, err := s.engine.Project(s.baseCtx, req)
	if err != nil {
		s.fail(ctx, err)
		return nil, false
	}

	if claims != nil {
		s.log.Debug("projection computed",
			zap.String("user_id", claims.Subject),
			zap.Int("accounts", len(req.Accounts)),
			zap.String("net_worth_at_target", result.NetWorthAtTarget.StringFixed(2)),
		)
	}
	return result, true
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	result, ok := s.project(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleReport(ctx *fasthttp.RequestCtx) {
	format := string(ctx.QueryArgs().Peek("format"))
	if format == "" {
		format = "html"
	}
	f, err := output.Lookup(format)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	result, ok := s.project(ctx)
	if !ok {
		return
	}
	body, err := f.Format(result)
	if err != nil {
		s.fail(ctx, fmt.Errorf("format %s report: %w", f.Name(), err))
		return
	}
	ctx.SetContentType(output.ContentType(f.Name()))
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}
