package main

import (
	"github.com/mattermost/mattermost-server/v6/model"
)

var manifest = &model.Manifest{
	Id:      "com.github.ericzzh.mattermost-plugin-burn",
	Name:    "Burn",
	Version: "0.1.0",
}
