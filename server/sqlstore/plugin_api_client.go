package sqlstore

import (
	"database/sql"

	pluginapi "github.com/mattermost/mattermost-plugin-api"
)

// StoreAPI is the interface exposing the underlying database, provided by
// pluginapi.
type StoreAPI interface {
	GetMasterDB() (*sql.DB, error)
	DriverName() string
}

// PluginAPIClient is the struct combining the interfaces defined above,
// which is everything the store needs from the plugin api.
type PluginAPIClient struct {
	Store StoreAPI
}

// NewClient receives a pluginapi.Client and returns the PluginAPIClient.
func NewClient(api *pluginapi.Client) PluginAPIClient {
	return PluginAPIClient{
		Store: api.Store,
	}
}
