package bot

import "fmt"

func (b *Bot) Debugf(format string, args ...interface{}) {
	b.pluginAPI.Log.Debug(fmt.Sprintf(format, args...))
}

func (b *Bot) Infof(format string, args ...interface{}) {
	b.pluginAPI.Log.Info(fmt.Sprintf(format, args...))
}

func (b *Bot) Warnf(format string, args ...interface{}) {
	b.pluginAPI.Log.Warn(fmt.Sprintf(format, args...))
}

func (b *Bot) Errorf(format string, args ...interface{}) {
	b.pluginAPI.Log.Error(fmt.Sprintf(format, args...))
}
