package screen

import (
	"context"
	"slices"

	"github.com/klwxsrx/parcelshare/internal/parcelshare/app/backend"
)

// List is the state of a fetched list with one expandable item and at most
// one action in flight.
type List[T any] struct {
	base
	subject subject

	items      []T
	loading    bool
	expanded   *int64
	processing *int64

	id    func(T) int64
	fetch func(ctx context.Context, userID int64) ([]T, error)
}

func newList[T any](
	deps *Deps,
	route string,
	subj subject,
	id func(T) int64,
	fetch func(ctx context.Context, userID int64) ([]T, error),
) *List[T] {
	return &List[T]{
		base:    newBase(deps, route),
		subject: subj,
		id:      id,
		fetch:   fetch,
	}
}

func (l *List[T]) Items() []T {
	return l.items
}

func (l *List[T]) Loading() bool {
	return l.loading
}

func (l *List[T]) Init() []Task {
	task := l.Reload()
	if task == nil {
		return nil
	}
	return []Task{task}
}

// Reload fetches the list again; it is also the retry control.
func (l *List[T]) Reload() Task {
	userID, ok := l.userID()
	if !ok {
		l.banner = errorBanner(MessageNoUserID)
		return nil
	}

	l.loading = true
	return func(ctx context.Context) Apply {
		items, err := l.fetch(ctx, userID)
		return func() {
			l.loading = false
			if err != nil {
				banner, show := l.failure(ctx, err, l.subject, l.subject.loadFailed())
				if show {
					l.banner = banner
					l.items = nil
				}
				return
			}

			l.items = items
			l.banner = Banner{}
		}
	}
}

func (l *List[T]) Toggle(id int64) {
	if l.IsExpanded(id) {
		l.expanded = nil
		return
	}
	l.expanded = &id
}

func (l *List[T]) IsExpanded(id int64) bool {
	return l.expanded != nil && *l.expanded == id
}

func (l *List[T]) IsProcessing(id int64) bool {
	return l.processing != nil && *l.processing == id
}

func (l *List[T]) Busy() bool {
	return l.processing != nil
}

func (l *List[T]) remove(id int64) {
	l.items = slices.DeleteFunc(l.items, func(item T) bool {
		return l.id(item) == id
	})
	if l.IsExpanded(id) {
		l.expanded = nil
	}
}

// act runs a mutation for item id. The item leaves the list only when the
// backend confirms success. A call while another one is in flight is
// ignored.
func (l *List[T]) act(
	id int64,
	act action,
	call func(ctx context.Context) (backend.ActionResult, error),
	onSuccess func(),
) Task {
	if l.Busy() {
		return nil
	}
	l.processing = &id

	return func(ctx context.Context) Apply {
		result, err := call(ctx)
		return func() {
			l.processing = nil
			switch {
			case err != nil:
				banner, show := l.failure(ctx, err, l.subject, act.failed())
				if show {
					l.banner = banner
				}
			case !result.Success:
				l.banner = errorBanner(act.rejected(result.Message))
			default:
				onSuccess()
				l.banner = successBanner(act.success)
			}
		}
	}
}
