package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-booking-api/internal/models"
)

const courseColumns = `id, name, price, description, category, "userId", "createdAt", "updatedAt"`

// CourseRepository manages persistence for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses matching filter ordered by id.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	var conditions []string
	var args []interface{}
	if filter.TeacherID != nil {
		args = append(args, *filter.TeacherID)
		conditions = append(conditions, `"userId" = `+placeholder(args))
	}

	query := `SELECT ` + courseColumns + ` FROM "Courses"`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID fetches a course by ID.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM "Courses" WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `INSERT INTO "Courses" (name, price, description, category, "userId", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING ` + courseColumns
	if err := r.db.GetContext(ctx, course, query, course.Name, course.Price, course.Description, course.Category, course.UserID, time.Now().UTC()); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `UPDATE "Courses" SET name = $1, price = $2, description = $3, category = $4, "userId" = $5, "updatedAt" = $6
		WHERE id = $7 RETURNING ` + courseColumns
	if err := r.db.GetContext(ctx, course, query, course.Name, course.Price, course.Description, course.Category, course.UserID, time.Now().UTC(), course.ID); err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// UpdatePrice changes only the price of a course.
func (r *CourseRepository) UpdatePrice(ctx context.Context, id, price int64) (*models.Course, error) {
	query := `UPDATE "Courses" SET price = $1, "updatedAt" = $2 WHERE id = $3 RETURNING ` + courseColumns
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, price, time.Now().UTC(), id); err != nil {
		return nil, fmt.Errorf("update course price: %w", err)
	}
	return &course, nil
}

// Delete removes a course. Reservations keep living with a NULL courseId.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `"Courses"`, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
