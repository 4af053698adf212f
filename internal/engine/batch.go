package engine

import (
	"sync"

	"quote-engine/internal/model"
)

// ProcessBatch runs Process over every request with at most workers
// documents in flight. Results keep the order of reqs.
func ProcessBatch(reqs []*model.ConsolidationRequest, opts Options, workers int) []*model.ConsolidationResponse {
	results := make([]*model.ConsolidationResponse, len(reqs))
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, req *model.ConsolidationRequest) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = Process(req, opts)
		}(i, req)
	}
	wg.Wait()

	return results
}
