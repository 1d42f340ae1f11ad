package store

import (
	"context"

	"github.com/google/uuid"

	"serenity-api/internal/model"
)

// CreateAppointment inserts a new booking and returns the assigned id.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) (string, error) {
	id := uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments
		   (id, email, full_name, date, start_time, duration_minutes,
		    concern, mode, counsellor, completed, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		id, a.Email, a.FullName, a.Date, a.StartTime, int(a.Duration),
		a.Concern, a.Mode, a.Counsellor, a.Completed, a.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	a.ID = id
	return id, nil
}

// AppointmentsByEmail returns every appointment stored for one identity
// key, oldest booking first so later ordering is deterministic.
func (s *Store) AppointmentsByEmail(ctx context.Context, email string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, email, full_name, date, start_time, duration_minutes,
		        concern, mode, counsellor, completed, created_at
		 FROM appointments
		 WHERE email = $1
		 ORDER BY created_at, id`, email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		var duration int
		if err := rows.Scan(
			&a.ID, &a.Email, &a.FullName, &a.Date, &a.StartTime, &duration,
			&a.Concern, &a.Mode, &a.Counsellor, &a.Completed, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Duration = model.Minutes(duration)
		out = append(out, a)
	}
	return out, rows.Err()
}
