package config

import (
	"sync"

	pluginapi "github.com/mattermost/mattermost-plugin-api"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"
)

// Service is the configuration surface consumed by the other packages.
type Service interface {
	// GetConfiguration retrieves the active configuration, which is
	// guaranteed to never return nil.
	GetConfiguration() *Configuration

	// UpdateConfiguration updates the active configuration and persists it
	// back to the server.
	UpdateConfiguration(f func(*Configuration)) error

	// OnConfigurationChange reloads the configuration from the server.
	OnConfigurationChange() error
}

// ServiceImpl holds access to the plugin's configuration.
type ServiceImpl struct {
	api      *pluginapi.Client
	manifest *model.Manifest

	// configurationLock synchronizes access to the configuration.
	configurationLock sync.RWMutex
	configuration     *Configuration
}

// NewConfigService creates the configuration service for the plugin.
func NewConfigService(api *pluginapi.Client, manifest *model.Manifest) *ServiceImpl {
	return &ServiceImpl{
		api:           api,
		manifest:      manifest,
		configuration: &Configuration{},
	}
}

func (c *ServiceImpl) GetConfiguration() *Configuration {
	c.configurationLock.RLock()
	defer c.configurationLock.RUnlock()

	return c.configuration.Clone()
}

func (c *ServiceImpl) UpdateConfiguration(f func(*Configuration)) error {
	c.configurationLock.Lock()

	configuration := c.configuration.Clone()
	f(configuration)
	c.configuration = configuration

	c.configurationLock.Unlock()

	configMap, err := configuration.ToMap()
	if err != nil {
		return errors.Wrapf(err, "failed to convert configuration")
	}

	if err := c.api.Configuration.SavePluginConfig(configMap); err != nil {
		return errors.Wrapf(err, "failed to save plugin configuration")
	}

	return nil
}

func (c *ServiceImpl) OnConfigurationChange() error {
	configuration := &Configuration{}

	if err := c.api.Configuration.LoadPluginConfiguration(configuration); err != nil {
		return errors.Wrapf(err, "failed to load plugin configuration")
	}

	c.configurationLock.Lock()
	defer c.configurationLock.Unlock()

	c.configuration = configuration

	return nil
}
