package worker

import (
	"slices"
	"sync"

	"github.com/samber/lo"

	"berry_buddy/internal/domain/entity"
)

// KindFilter decides which activity kinds reach the moderation chat. An
// empty filter lets everything through. It is shared by the queue handler,
// the in-process dispatcher and the bot commands that change it.
type KindFilter struct {
	mu    sync.Mutex
	muted []entity.ActivityKind
}

func NewKindFilter(muted ...entity.ActivityKind) *KindFilter {
	return &KindFilter{muted: lo.Uniq(muted)}
}

// Mute adds kinds to the muted list, skipping the ones already there.
func (f *KindFilter) Mute(kinds ...entity.ActivityKind) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, kind := range kinds {
		if !slices.Contains(f.muted, kind) {
			f.muted = append(f.muted, kind)
		}
	}
}

func (f *KindFilter) Unmute(kinds ...entity.ActivityKind) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.muted = lo.Without(f.muted, kinds...)
}

// Clear unmutes every kind.
func (f *KindFilter) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.muted = nil
}

// Muted returns a copy of the muted kinds.
func (f *KindFilter) Muted() []entity.ActivityKind {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.muted)
}

func (f *KindFilter) Allows(kind entity.ActivityKind) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !slices.Contains(f.muted, kind)
}
