//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fivetwenty-io/ado-client/pkg/ado"
	"github.com/fivetwenty-io/ado-client/pkg/adoclient"
)

// ClientIntegrationTestSuite exercises the library against a live organization
type ClientIntegrationTestSuite struct {
	suite.Suite
	config *TestConfig
	client ado.Client
	ctx    context.Context
	cancel context.CancelFunc
}

// SetupSuite runs once before all tests in the suite
func (s *ClientIntegrationTestSuite) SetupSuite() {
	s.config = LoadTestConfig()
	s.config.SkipIfMissingConfig(s.T())

	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Minute)

	client, err := adoclient.NewVerified(s.ctx, &ado.Config{
		Username:     s.config.Username,
		Tenant:       s.config.Tenant,
		ProjectID:    s.config.Project,
		RepositoryID: s.config.Repository,
		Credentials:  ado.Credentials{Identity: s.config.Username, Secret: s.config.Token},
		RetryMax:     2,
	})
	s.Require().NoError(err)

	s.client = client
}

// TearDownSuite runs once after all tests in the suite
func (s *ClientIntegrationTestSuite) TearDownSuite() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *ClientIntegrationTestSuite) TestListRepositories() {
	payload, err := s.client.Git().ListRepositories(s.ctx)
	s.Require().NoError(err)

	count, err := payload.Len()
	s.Require().NoError(err)
	s.Positive(count)
}

func (s *ClientIntegrationTestSuite) TestListAllPullRequests() {
	pullRequests, err := s.client.ListAllPullRequests(s.ctx, s.config.Branch)
	s.Require().NoError(err)
	s.NotNil(pullRequests)
}

func (s *ClientIntegrationTestSuite) TestGetProfile() {
	payload, err := s.client.User().GetProfile(s.ctx)
	s.Require().NoError(err)

	var profile struct {
		ID string `json:"id"`
	}

	s.Require().NoError(payload.Decode(&profile))
	s.NotEmpty(profile.ID)
}

func (s *ClientIntegrationTestSuite) TestGetBranchRefs() {
	filter := "heads/"

	payload, err := s.client.Git().GetRefs(s.ctx, &filter)
	s.Require().NoError(err)

	refs, err := payload.Items()
	s.Require().NoError(err)
	s.NotEmpty(refs)
}

func (s *ClientIntegrationTestSuite) TestMissingRepositoryIsNotFound() {
	resp, err := s.client.CustomGet(s.ctx, "git/repositories/00000000-0000-0000-0000-000000000000",
		nil, ado.URLScope{})
	s.Require().NoError(err)
	s.False(resp.IsSuccess())
}

func TestClientIntegrationSuite(t *testing.T) {
	suite.Run(t, new(ClientIntegrationTestSuite))
}
