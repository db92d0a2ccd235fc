// Package resource implements the request-lifecycle state machine shared by
// every list and detail screen: a fetch cycle plus optional create, update,
// upload and delete sub-lifecycles layered on independent flags.
package resource

import "sync"

// State is the observable lifecycle snapshot for one fetched entity. A
// failed fetch keeps the previously loaded Data so stale content can be
// shown next to the error.
type State[T any] struct {
	Loading bool
	Data    T
	Err     string

	LoadingCreate bool
	ErrCreate     string

	LoadingUpdate bool
	ErrUpdate     string

	LoadingUpload bool
	ErrUpload     string

	LoadingDelete bool
	SuccessDelete bool
	ErrDelete     string
}

// Resource serializes transitions on a State and fences asynchronous fetch
// completions with a generation counter: a completion carrying a generation
// older than the latest issued request is discarded, so a slow response can
// never overwrite a newer one.
type Resource[T any] struct {
	mu    sync.Mutex
	state State[T]
	gen   uint64
}

func New[T any]() *Resource[T] {
	return &Resource[T]{}
}

// State returns the current snapshot. Callers must treat Data as read-only.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Begin records a fetch request and returns the generation the caller must
// present when completing it.
func (r *Resource[T]) Begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.state.Loading = true
	r.state.Err = ""
	return r.gen
}

// Succeed stores the payload for the given generation. Stale generations are
// discarded and false is returned.
func (r *Resource[T]) Succeed(gen uint64, data T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	r.state.Loading = false
	r.state.Data = data
	r.state.Err = ""
	return true
}

// Fail records the failure reason for the given generation, retaining any
// previously loaded data. Stale generations are discarded.
func (r *Resource[T]) Fail(gen uint64, msg string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	r.state.Loading = false
	r.state.Err = msg
	return true
}

// Adopt replaces the loaded data outside a fetch cycle, for server-confirmed
// snapshots returned by mutations.
func (r *Resource[T]) Adopt(data T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Data = data
}

// Invalidate bumps the generation so that any in-flight completion is
// discarded. Called when the owning controller is torn down.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.state.Loading = false
}

func (r *Resource[T]) CreateRequested() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingCreate = true
	r.state.ErrCreate = ""
}

func (r *Resource[T]) CreateSucceeded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingCreate = false
	r.state.ErrCreate = ""
}

func (r *Resource[T]) CreateFailed(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingCreate = false
	r.state.ErrCreate = msg
}

func (r *Resource[T]) UpdateRequested() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingUpdate = true
	r.state.ErrUpdate = ""
}

func (r *Resource[T]) UpdateSucceeded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingUpdate = false
	r.state.ErrUpdate = ""
}

func (r *Resource[T]) UpdateFailed(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingUpdate = false
	r.state.ErrUpdate = msg
}

func (r *Resource[T]) UploadRequested() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingUpload = true
	r.state.ErrUpload = ""
}

func (r *Resource[T]) UploadSucceeded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingUpload = false
	r.state.ErrUpload = ""
}

func (r *Resource[T]) UploadFailed(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingUpload = false
	r.state.ErrUpload = msg
}

func (r *Resource[T]) DeleteRequested() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingDelete = true
	r.state.ErrDelete = ""
}

// DeleteSucceeded raises SuccessDelete as the refetch signal for the owning
// controller. The controller must issue DeleteReset right after observing
// it, so the signal is consumed exactly once per deletion.
func (r *Resource[T]) DeleteSucceeded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingDelete = false
	r.state.SuccessDelete = true
}

func (r *Resource[T]) DeleteFailed(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingDelete = false
	r.state.ErrDelete = msg
}

// DeleteReset clears the delete flags. Calling it without a preceding
// DeleteSucceeded is a no-op.
func (r *Resource[T]) DeleteReset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.LoadingDelete = false
	r.state.SuccessDelete = false
}
