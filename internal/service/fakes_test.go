package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/course-booking-api/internal/models"
)

var fakeNow = time.Date(2024, time.June, 18, 10, 0, 0, 0, time.UTC)

type mockUserRepo struct {
	items  map[int64]*models.User
	nextID int64
	err    error
}

func newMockUserRepo(users ...models.User) *mockUserRepo {
	m := &mockUserRepo{items: make(map[int64]*models.User)}
	for i := range users {
		u := users[i]
		m.items[u.ID] = &u
		if u.ID > m.nextID {
			m.nextID = u.ID
		}
	}
	return m
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.User
	for _, id := range sortedKeys(m.items) {
		out = append(out, *m.items[id])
	}
	return out, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.items[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, id := range sortedKeys(m.items) {
		if strings.EqualFold(m.items[id].Email, email) {
			cp := *m.items[id]
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt, user.UpdatedAt = fakeNow, fakeNow
	cp := *user
	m.items[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := m.items[user.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *user
	m.items[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockCourseRepo struct {
	items  map[int64]*models.Course
	nextID int64
	err    error
}

func (m *mockCourseRepo) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Course
	for _, id := range sortedKeys(m.items) {
		c := m.items[id]
		if filter.TeacherID != nil && (c.UserID == nil || *c.UserID != *filter.TeacherID) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCourseRepo) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	if c, ok := m.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockCourseRepo) Create(ctx context.Context, course *models.Course) error {
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = make(map[int64]*models.Course)
	}
	m.nextID++
	course.ID = m.nextID
	cp := *course
	m.items[course.ID] = &cp
	return nil
}

func (m *mockCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if _, ok := m.items[course.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *course
	m.items[course.ID] = &cp
	return nil
}

func (m *mockCourseRepo) UpdatePrice(ctx context.Context, id, price int64) (*models.Course, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	c.Price = price
	cp := *c
	return &cp, nil
}

func (m *mockCourseRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockAvailabilityRepo struct {
	items      map[int64]*models.Availability
	nextID     int64
	lastFilter models.AvailabilityFilter
}

func (m *mockAvailabilityRepo) List(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error) {
	m.lastFilter = filter
	var out []models.Availability
	for _, id := range sortedKeys(m.items) {
		a := m.items[id]
		if filter.UserID != nil && (a.UserID == nil || *a.UserID != *filter.UserID) {
			continue
		}
		if filter.From != nil && a.Date.Before(filter.From.Time) {
			continue
		}
		if filter.To != nil && a.Date.After(filter.To.Time) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAvailabilityRepo) FindByID(ctx context.Context, id int64) (*models.Availability, error) {
	if a, ok := m.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAvailabilityRepo) Create(ctx context.Context, item *models.Availability) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Availability)
	}
	m.nextID++
	item.ID = m.nextID
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockAvailabilityRepo) Update(ctx context.Context, item *models.Availability) error {
	if _, ok := m.items[item.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockAvailabilityRepo) SetAvailable(ctx context.Context, id int64, available bool) (*models.Availability, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	a.IsAvailable = available
	cp := *a
	return &cp, nil
}

func (m *mockAvailabilityRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockReservationRepo struct {
	items  map[int64]*models.Reservation
	nextID int64
	err    error
}

func (m *mockReservationRepo) List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Reservation
	for _, id := range sortedKeys(m.items) {
		r := m.items[id]
		if filter.UserID != nil && (r.UserID == nil || *r.UserID != *filter.UserID) {
			continue
		}
		if filter.CourseID != nil && (r.CourseID == nil || *r.CourseID != *filter.CourseID) {
			continue
		}
		if filter.ActiveOnly && r.IsCancelled {
			continue
		}
		if filter.CreatedOn != nil && r.CreatedAt.UTC().Format(models.DateLayout) != filter.CreatedOn.String() {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockReservationRepo) FindByID(ctx context.Context, id int64) (*models.Reservation, error) {
	if r, ok := m.items[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockReservationRepo) Create(ctx context.Context, item *models.Reservation) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Reservation)
	}
	m.nextID++
	item.ID = m.nextID
	item.CreatedAt, item.UpdatedAt = fakeNow, fakeNow
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockReservationRepo) Update(ctx context.Context, item *models.Reservation) error {
	existing, ok := m.items[item.ID]
	if !ok {
		return sql.ErrNoRows
	}
	item.IsCancelled = existing.IsCancelled || item.IsCancelled
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockReservationRepo) MarkCancelled(ctx context.Context, id int64) (*models.Reservation, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	r.IsCancelled = true
	cp := *r
	return &cp, nil
}

func (m *mockReservationRepo) MarkReviewed(ctx context.Context, id int64) (*models.Reservation, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	r.IsReviewed = true
	cp := *r
	return &cp, nil
}

func (m *mockReservationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

type mockReviewRepo struct {
	items    map[int64]*models.Review
	nextID   int64
	err      error
	askedIDs []int64
}

func (m *mockReviewRepo) List(ctx context.Context) ([]models.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Review
	for _, id := range sortedKeys(m.items) {
		out = append(out, *m.items[id])
	}
	return out, nil
}

func (m *mockReviewRepo) ListByReservationIDs(ctx context.Context, ids []int64) ([]models.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.askedIDs = ids
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Review
	for _, id := range sortedKeys(m.items) {
		r := m.items[id]
		if r.ReservationID != nil && want[*r.ReservationID] {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id int64) (*models.Review, error) {
	if r, ok := m.items[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockReviewRepo) Create(ctx context.Context, item *models.Review) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Review)
	}
	m.nextID++
	item.ID = m.nextID
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockReviewRepo) Update(ctx context.Context, item *models.Review) error {
	if _, ok := m.items[item.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func sortedKeys[T any](items map[int64]T) []int64 {
	keys := make([]int64, 0, len(items))
	for id := range items {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }
