package counter

import "github.com/creatorsconnections/tokboard/internal/models"

type SaveWeeklyInput struct {
	Counters *models.CounterSet
}

type GetWeeklyInput struct {
	GuildID string
}

type SetLastResetInput struct {
	GuildID  string
	Boundary string
}

type GetLastResetInput struct {
	GuildID string
}

type GetLastResetOutput struct {
	Boundary string
}
