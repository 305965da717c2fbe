package articlename_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"stock-admin/internal/domain/entity"
)

/*────────────────────  インメモリスタブ  ────────────────────*/

type stubRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.ArticleName
	nextID int64
	err    error // 強制エラー注入用

	batchCalls int
	block      chan struct{} // CreateBatch をこのチャネルが閉じるまで止める
	entered    chan struct{}
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.ArticleName{}, nextID: 1}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.ArticleName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.ArticleName, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.ArticleName
	for _, v := range s.data {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, s.err
}

func (s *stubRepo) Create(_ context.Context, a *entity.ArticleName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.insert(a)
	return nil
}

func (s *stubRepo) CreateBatch(_ context.Context, items []*entity.ArticleName) error {
	s.mu.Lock()
	s.batchCalls++
	block, entered := s.block, s.entered
	s.mu.Unlock()

	if entered != nil {
		close(entered)
	}
	if block != nil {
		<-block
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, a := range items {
		s.insert(a)
	}
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.ArticleName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[a.ID]; !ok {
		return entity.ErrNotFound
	}
	a.UpdatedAt = time.Now()
	cp := *a
	s.data[a.ID] = &cp
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) insert(a *entity.ArticleName) {
	now := time.Now()
	a.ID = s.nextID
	a.CreatedAt, a.UpdatedAt = now, now
	s.nextID++
	cp := *a
	s.data[a.ID] = &cp
}

func (s *stubRepo) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
