package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
)

type DecisionServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	h   *harness
}

func (suite *DecisionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.h = newHarness()
}

func (suite *DecisionServiceTestSuite) TestCreateDecision_Success() {
	created, err := suite.h.svc.Decision.CreateDecision(suite.ctx, budgetDecision(5000), "board-1")

	suite.Require().NoError(err)
	suite.NotEmpty(created.DecisionID)
	suite.True(created.IsActive)
	suite.Equal("board-1", created.CreatedBy)
	suite.Equal(fixedNow, created.CreatedAt)

	got, err := suite.h.svc.Decision.GetDecision(suite.ctx, created.DecisionID)
	suite.Require().NoError(err)
	suite.Equal(created.Title, got.Title)
}

func (suite *DecisionServiceTestSuite) TestCreateDecision_Invalid() {
	d := budgetDecision(5000)
	d.Title = ""
	d.AuthorityLevel = "intern"
	d.AllowsActions = []domain.EventType{"teleport"}
	negative := decimal.NewFromInt(-1)
	d.ExpenseLimit = &negative
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	d.TimePeriod = &domain.TimePeriod{Start: &start, End: &end}

	_, err := suite.h.svc.Decision.CreateDecision(suite.ctx, d, "board-1")

	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.ElementsMatch([]string{"title", "authority_level", "allows_actions", "expense_limit", "time_period"}, verr.Fields)
}

func (suite *DecisionServiceTestSuite) TestDeactivateDecision_BlocksPosting() {
	decision, err := suite.h.svc.Decision.CreateDecision(suite.ctx, budgetDecision(5000), "board-1")
	suite.Require().NoError(err)
	event, err := suite.h.svc.Event.CreateEvent(suite.ctx, expenseDraft(100))
	suite.Require().NoError(err)

	check, err := suite.h.svc.Enforcement.CanPostEvent(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.True(check.IsAllowed)
	suite.Equal(decision.DecisionID, check.DecisionID)

	suite.Require().NoError(suite.h.svc.Decision.DeactivateDecision(suite.ctx, decision.DecisionID, "board-1"))

	check, err = suite.h.svc.Enforcement.CanPostEvent(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.False(check.IsAllowed)
	suite.Equal(domain.CheckDecisionMissing, check.Code)
	suite.Equal(domain.DecisionBudgetApproval, check.RequiredDecision)

	active, err := suite.h.svc.Decision.ListDecisions(suite.ctx, testProfile, true)
	suite.Require().NoError(err)
	suite.Empty(active)
	all, err := suite.h.svc.Decision.ListDecisions(suite.ctx, testProfile, false)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *DecisionServiceTestSuite) TestListDecisions_RequiresProfile() {
	_, err := suite.h.svc.Decision.ListDecisions(suite.ctx, "", false)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DecisionServiceTestSuite) TestEnforcement_ChecksUnknownEvent() {
	_, err := suite.h.svc.Enforcement.CanProgressStatus(suite.ctx, "missing", domain.StatusClassified)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DecisionServiceTestSuite) TestEnforcement_CanUserApprove() {
	_, err := suite.h.svc.Decision.CreateDecision(suite.ctx, budgetDecision(5000), "board-1")
	suite.Require().NoError(err)
	event, err := suite.h.svc.Event.CreateEvent(suite.ctx, expenseDraft(100))
	suite.Require().NoError(err)

	check, err := suite.h.svc.Enforcement.CanUserApprove(suite.ctx, event.ID, domain.AuthorityShareholder)
	suite.Require().NoError(err)
	suite.True(check.IsAllowed)

	check, err = suite.h.svc.Enforcement.CanUserApprove(suite.ctx, event.ID, domain.AuthorityEmployee)
	suite.Require().NoError(err)
	suite.False(check.IsAllowed)
	suite.Equal(domain.CheckInsufficientRole, check.Code)
}

func TestDecisionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DecisionServiceTestSuite))
}
