package res

import (
	"context"
	"image"
	"sync"
)

// DefaultWorkers bounds photo acquisition concurrency when the caller does
// not choose a limit.
const DefaultWorkers = 4

// Source loads photo bytes for a URL. *Loader is the production
// implementation.
type Source interface {
	Load(urlStr string) (*Resource, error)
}

// Ref names one photo to acquire.
type Ref struct {
	ID  string // recipe id, becomes the ImageSet key
	URL string
}

// Failure records one photo that could not be acquired or decoded. The
// recipe still renders, without its photo.
type Failure struct {
	ID  string
	URL string
	Err error
}

// Prefetch acquires and decodes every referenced photo with at most workers
// concurrent loads. It returns only when every ref has either succeeded or
// failed: layout never starts while a fetch is still in flight. Failures
// come back in input order. Cancelling the context fails the refs whose
// load has not started yet.
func Prefetch(ctx context.Context, refs []Ref, src Source, workers int) (ImageSet, []Failure) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	type slot struct {
		img image.Image
		err error
	}
	slots := make([]slot, len(refs))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, ref := range refs {
		if ref.URL == "" {
			continue
		}
		wg.Add(1)
		go func(i int, ref Ref) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				slots[i].err = err
				return
			}
			r, err := src.Load(ref.URL)
			if err != nil {
				slots[i].err = err
				return
			}
			img, err := Decode(r.Data)
			if err != nil {
				slots[i].err = err
				return
			}
			slots[i].img = img
		}(i, ref)
	}
	wg.Wait()

	set := make(ImageSet)
	var failures []Failure
	for i, ref := range refs {
		if ref.URL == "" {
			continue
		}
		if slots[i].err != nil {
			failures = append(failures, Failure{ID: ref.ID, URL: ref.URL, Err: slots[i].err})
			continue
		}
		set[ref.ID] = slots[i].img
	}
	return set, failures
}
