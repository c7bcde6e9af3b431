package domain

import (
	"fmt"
	"time"

	"github.com/louisbranch/storypoints/internal/platform/id"
)

// ReviewItem is one unit of work awaiting a point estimate. FinalPoints is
// stamped when the item is completed, immediately before it leaves the
// queue.
type ReviewItem struct {
	ID          string
	Name        string
	IsCurrent   bool
	IsCompleted bool
	FinalPoints *float64
	AddedAt     time.Time
}

// Queue is the ordered backlog of review items. The current item is tracked
// by an explicit id pointer; the per-item IsCurrent flag mirrors the pointer
// so at most one item ever carries it.
type Queue struct {
	Items []ReviewItem

	currentID string
}

// CurrentID returns the id of the current item, or "" when none is current.
func (q *Queue) CurrentID() string {
	return q.currentID
}

// Current returns a copy of the current item.
func (q *Queue) Current() (ReviewItem, bool) {
	if q.currentID == "" {
		return ReviewItem{}, false
	}
	for _, item := range q.Items {
		if item.ID == q.currentID {
			return item, true
		}
	}
	return ReviewItem{}, false
}

// Remaining returns the incomplete items in queue order. Completed items are
// removed on completion, so in practice this is the whole queue.
func (q *Queue) Remaining() []ReviewItem {
	remaining := make([]ReviewItem, 0, len(q.Items))
	for _, item := range q.Items {
		if !item.IsCompleted {
			remaining = append(remaining, item)
		}
	}
	return remaining
}

// Add appends a new item to the queue. The first item added to an empty
// queue immediately becomes current. A copy of the new item is returned.
func (q *Queue) Add(name string, now func() time.Time, idGenerator func() (string, error)) (ReviewItem, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	itemID, err := idGenerator()
	if err != nil {
		return ReviewItem{}, fmt.Errorf("generate review item id: %w", err)
	}

	item := ReviewItem{
		ID:      itemID,
		Name:    name,
		AddedAt: now().UTC(),
	}
	q.Items = append(q.Items, item)
	if len(q.Items) == 1 {
		q.point(itemID)
	}
	return q.Items[len(q.Items)-1], nil
}

// Remove deletes the item with the given id. Removing the current item
// promotes the queue's new first element, or leaves nothing current when the
// queue is empty. Unknown ids are a no-op.
func (q *Queue) Remove(itemID string) bool {
	index := q.indexOf(itemID)
	if index < 0 {
		return false
	}
	wasCurrent := q.Items[index].ID == q.currentID
	q.Items = append(q.Items[:index], q.Items[index+1:]...)
	if wasCurrent {
		q.promoteFirst()
	}
	return true
}

// SetCurrent makes the item with the given id current. An unknown id leaves
// no item current.
func (q *Queue) SetCurrent(itemID string) bool {
	if q.indexOf(itemID) < 0 {
		q.point("")
		return false
	}
	q.point(itemID)
	return true
}

// CompleteCurrent stamps the final points on the current item, marks it
// completed, removes it from the queue, and promotes the next item in
// order. The completed item is returned so collaborators can capture it
// before it is gone; with no current item the call is a no-op.
func (q *Queue) CompleteCurrent(finalPoints float64) (ReviewItem, bool) {
	index := q.indexOf(q.currentID)
	if index < 0 {
		return ReviewItem{}, false
	}

	completed := q.Items[index]
	completed.IsCompleted = true
	completed.IsCurrent = false
	completed.FinalPoints = &finalPoints

	q.Items = append(q.Items[:index], q.Items[index+1:]...)
	q.promoteFirst()
	return completed, true
}

func (q *Queue) indexOf(itemID string) int {
	if itemID == "" {
		return -1
	}
	for i, item := range q.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// promoteFirst makes position 0 current, or clears the pointer when the
// queue is empty. Promotion always selects the first remaining element;
// there is no priority ordering.
func (q *Queue) promoteFirst() {
	if len(q.Items) == 0 {
		q.point("")
		return
	}
	q.point(q.Items[0].ID)
}

// point moves the current pointer and keeps the mirrored IsCurrent flags in
// sync with it.
func (q *Queue) point(itemID string) {
	q.currentID = itemID
	for i := range q.Items {
		q.Items[i].IsCurrent = q.Items[i].ID == itemID && itemID != ""
	}
}
