package guildconfig

import "github.com/creatorsconnections/tokboard/internal/models"

type SaveInput struct {
	Config *models.GuildConfig
}

type GetInput struct {
	GuildID string
}

type ListInput struct {
}

type ListOutput struct {
	Configs []*models.GuildConfig
}
