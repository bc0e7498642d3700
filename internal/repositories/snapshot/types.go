package snapshot

import "github.com/creatorsconnections/tokboard/internal/models"

type ParkInput struct {
	Parked *models.ParkedSnapshot
}

type ListInput struct {
	GuildID string
}

type ListOutput struct {
	Parked []*models.ParkedSnapshot
}
