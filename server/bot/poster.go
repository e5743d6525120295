package bot

import (
	"fmt"

	"github.com/mattermost/mattermost-server/v6/model"
)

// Poster is the messaging surface consumed by the app layer. PostMessage
// returns the created post so the caller can track its id; DeletePost is the
// per-message deletion used by a burn.
type Poster interface {
	PostMessage(channelID, format string, args ...interface{}) (*model.Post, error)
	EphemeralPost(userID, channelID string, post *model.Post)
	DeletePost(postID string) error
}

// PostMessage posts a message in the channel as the bot.
func (b *Bot) PostMessage(channelID, format string, args ...interface{}) (*model.Post, error) {
	post := &model.Post{
		Message:   fmt.Sprintf(format, args...),
		UserId:    b.botUserID,
		ChannelId: channelID,
	}
	if err := b.pluginAPI.Post.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// EphemeralPost sends a message visible only to the given user.
func (b *Bot) EphemeralPost(userID, channelID string, post *model.Post) {
	post.UserId = b.botUserID
	post.ChannelId = channelID
	b.pluginAPI.Post.SendEphemeralPost(userID, post)
}

// DeletePost removes a post from its channel.
func (b *Bot) DeletePost(postID string) error {
	return b.pluginAPI.Post.DeletePost(postID)
}
