package tgbot

type SubCommand struct {
	subs *subscriptions
}

func (c *SubCommand) Run(chatID int64, _ string) (string, error) {
	c.subs.Add(chatID)
	return "subscribed to game notifications, /unsub to stop", nil
}

func (c *SubCommand) Help() string {
	return "Subscribe to new game notifications"
}
