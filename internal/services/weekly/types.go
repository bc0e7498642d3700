package weekly

import (
	"time"

	"github.com/creatorsconnections/tokboard/internal/common/clock"
	counterRepo "github.com/creatorsconnections/tokboard/internal/repositories/counter"
	guildconfigRepo "github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	"github.com/creatorsconnections/tokboard/internal/services/board"
	"github.com/creatorsconnections/tokboard/internal/services/handoff"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPollInterval is how often the scheduler checks for due boundaries
	DefaultPollInterval = time.Minute

	// DefaultWeeklyDay is the ISO weekday of the default boundary (Saturday)
	DefaultWeeklyDay = 6

	// DefaultWeeklyHour is the hour of the default boundary
	DefaultWeeklyHour = 19
)

// Config holds the dependencies for the weekly scheduler
type Config struct {
	GuildConfigRepo guildconfigRepo.Repository
	CounterRepo     counterRepo.Repository
	Board           board.Service
	HandOff         handoff.Service
	Clock           clock.Clock
	Logger          *logrus.Entry

	// PollInterval overrides the check cadence when positive
	PollInterval time.Duration
}
