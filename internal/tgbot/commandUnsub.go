package tgbot

type UnsubCommand struct {
	subs *subscriptions
}

func (c *UnsubCommand) Run(chatID int64, _ string) (string, error) {
	c.subs.Remove(chatID)
	return "unsubscribed from game notifications", nil
}

func (c *UnsubCommand) Help() string {
	return "Unsubscribe from new game notifications"
}
