package linkmap

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestLinkAndResolve() {
	err := s.repo.Link(context.Background(), &LinkInput{
		GuildID:  "guild-1",
		Handle:   "viewer1",
		MemberID: "member-1",
	})
	s.Require().NoError(err)

	output, err := s.repo.Resolve(context.Background(), &ResolveInput{
		GuildID: "guild-1",
		Handle:  "viewer1",
	})
	s.Require().NoError(err)
	s.Equal("member-1", output.MemberID)
}

func (s *RedisRepositoryTestSuite) TestResolveMissing() {
	_, err := s.repo.Resolve(context.Background(), &ResolveInput{
		GuildID: "guild-1",
		Handle:  "stranger",
	})
	s.ErrorIs(err, ErrLinkNotFound)
}

func (s *RedisRepositoryTestSuite) TestLinkReplacesPrevious() {
	err := s.repo.Link(context.Background(), &LinkInput{
		GuildID:  "guild-1",
		Handle:   "viewer1",
		MemberID: "member-1",
	})
	s.Require().NoError(err)

	err = s.repo.Link(context.Background(), &LinkInput{
		GuildID:  "guild-1",
		Handle:   "viewer1",
		MemberID: "member-2",
	})
	s.Require().NoError(err)

	output, err := s.repo.Resolve(context.Background(), &ResolveInput{
		GuildID: "guild-1",
		Handle:  "viewer1",
	})
	s.Require().NoError(err)
	s.Equal("member-2", output.MemberID)
}

func (s *RedisRepositoryTestSuite) TestLinksAreGuildScoped() {
	err := s.repo.Link(context.Background(), &LinkInput{
		GuildID:  "guild-1",
		Handle:   "viewer1",
		MemberID: "member-1",
	})
	s.Require().NoError(err)

	_, err = s.repo.Resolve(context.Background(), &ResolveInput{
		GuildID: "guild-2",
		Handle:  "viewer1",
	})
	s.ErrorIs(err, ErrLinkNotFound)
}
