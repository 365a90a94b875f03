package community

import "time"

type Mood string

const (
	MoodAnxious  Mood = "Anxious"
	MoodCurious  Mood = "Curious"
	MoodGuilty   Mood = "Guilty"
	MoodLearning Mood = "Learning"
	MoodCalm     Mood = "Calm"
	MoodGrateful Mood = "Grateful"
	MoodAngry    Mood = "Angry"
	MoodConfused Mood = "Confused"
)

// Moods lists every mood a post may carry, in the order clients show them.
var Moods = []Mood{
	MoodAnxious,
	MoodCurious,
	MoodGuilty,
	MoodLearning,
	MoodCalm,
	MoodGrateful,
	MoodAngry,
	MoodConfused,
}

func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

type ReactionKey string

const (
	ReactionHug    ReactionKey = "hug"
	ReactionListen ReactionKey = "listen"
	ReactionThanks ReactionKey = "thanks"
)

var ReactionKeys = []ReactionKey{ReactionHug, ReactionListen, ReactionThanks}

// ParseReactionKey maps raw input onto one of the reaction constants, so the
// result never aliases the caller's buffer.
func ParseReactionKey(raw string) (ReactionKey, bool) {
	for _, k := range ReactionKeys {
		if string(k) == raw {
			return k, true
		}
	}
	return "", false
}

func (k ReactionKey) Valid() bool {
	switch k {
	case ReactionHug, ReactionListen, ReactionThanks:
		return true
	}
	return false
}

type Reactions struct {
	Hug    int `json:"hug"`
	Listen int `json:"listen"`
	Thanks int `json:"thanks"`
}

// Get returns the counter named by key, or 0 for an unknown key.
func (r Reactions) Get(key ReactionKey) int {
	switch key {
	case ReactionHug:
		return r.Hug
	case ReactionListen:
		return r.Listen
	case ReactionThanks:
		return r.Thanks
	}
	return 0
}

func (r *Reactions) increment(key ReactionKey) bool {
	switch key {
	case ReactionHug:
		r.Hug++
	case ReactionListen:
		r.Listen++
	case ReactionThanks:
		r.Thanks++
	default:
		return false
	}
	return true
}

type Post struct {
	ID        string    `json:"id"`
	Mood      Mood      `json:"mood"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Reactions Reactions `json:"reactions"`
}

type CreatePostRequest struct {
	Mood Mood   `json:"mood"`
	Text string `json:"text"`
}

// FeedItem is a post as rendered in the feed, with its age spelled out.
type FeedItem struct {
	Post
	Posted string `json:"posted"`
}
