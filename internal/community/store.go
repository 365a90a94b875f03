package community

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	nowFn   = time.Now
	newIDFn = uuid.NewString
)

// Store owns the community posts. Create and React are the only mutations;
// posts are never edited otherwise and never deleted.
type Store struct {
	mu    sync.RWMutex
	posts []Post
	index map[string]int
}

func NewStore(seed ...Post) *Store {
	s := &Store{
		posts: make([]Post, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		if _, dup := s.index[p.ID]; dup || p.ID == "" {
			continue
		}
		s.index[p.ID] = len(s.posts)
		s.posts = append(s.posts, p)
	}
	return s
}

// Create adds a post with zeroed reactions. Blank text or an unknown mood
// leaves the store untouched and reports false.
func (s *Store) Create(mood Mood, text string) (Post, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !mood.Valid() {
		return Post{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newIDFn()
	for s.hasLocked(id) {
		id = newIDFn()
	}

	post := Post{
		ID:        id,
		Mood:      mood,
		Text:      text,
		CreatedAt: nowFn(),
	}
	s.index[id] = len(s.posts)
	s.posts = append(s.posts, post)
	return post, true
}

// React bumps one reaction counter on one post. Unknown ids and keys are
// no-ops reported as false.
func (s *Store) React(postID string, key ReactionKey) (Post, bool) {
	if !key.Valid() {
		return Post{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[postID]
	if !ok {
		return Post{}, false
	}
	s.posts[i].Reactions.increment(key)
	return s.posts[i], true
}

// Get returns a copy of a single post.
func (s *Store) Get(postID string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[postID]
	if !ok {
		return Post{}, false
	}
	return s.posts[i], true
}

// List returns a snapshot of every post, newest first.
func (s *Store) List() []Post {
	s.mu.RLock()
	posts := make([]Post, len(s.posts))
	copy(posts, s.posts)
	s.mu.RUnlock()

	return sortPosts(posts)
}

func (s *Store) hasLocked(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func sortPosts(posts []Post) []Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

// SamplePosts returns the posts a fresh feed starts with, dated relative to now.
func SamplePosts(now time.Time) []Post {
	return []Post{
		{
			ID:        "p1",
			Mood:      MoodAnxious,
			Text:      "I messed up a conversation about boundaries and feel terrible. How do I apologize meaningfully?",
			CreatedAt: now.Add(-3 * time.Hour),
			Reactions: Reactions{Hug: 12, Listen: 28, Thanks: 6},
		},
		{
			ID:        "p2",
			Mood:      MoodLearning,
			Text:      "Trying to understand consent better. Any resources that explain it clearly?",
			CreatedAt: now.Add(-8 * time.Hour),
			Reactions: Reactions{Hug: 4, Listen: 10, Thanks: 22},
		},
	}
}
