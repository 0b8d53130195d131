package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// subscriptions tracks the chats that want new game notifications.
// mapset is safe for concurrent use.
type subscriptions struct {
	chats mapset.Set[int64]
}

func newSubs() *subscriptions {
	return &subscriptions{
		chats: mapset.NewSet[int64](),
	}
}

func (s *subscriptions) Add(chatID int64) {
	s.chats.Add(chatID)
}

func (s *subscriptions) Remove(chatID int64) {
	s.chats.Remove(chatID)
}

func (s *subscriptions) List() []int64 {
	return s.chats.ToSlice()
}
