package services_test

import (
	"context"
	"time"

	"agenda_backend/internal/models"
	"agenda_backend/internal/repositories"
	"agenda_backend/internal/sessions"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository for service tests.
type fakeAppointmentRepo struct {
	appointments []models.Appointment
	nextID       int64
	err          error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{nextID: 1}
}

func (f *fakeAppointmentRepo) CreateAppointment(_ repositories.SQLExecutor, appointment *models.Appointment) (*models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	appointment.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *appointment)
	return appointment, nil
}

func (f *fakeAppointmentRepo) GetAppointments(filters models.AppointmentFilters) ([]models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := []models.Appointment{}
	for _, a := range f.appointments {
		if filters.Date != nil && !a.Date.Equal(*filters.Date) {
			continue
		}
		result = append(result, a)
	}
	if filters.OrderByDateTime {
		for i := 1; i < len(result); i++ {
			for j := i; j > 0; j-- {
				prev, cur := result[j-1], result[j]
				if prev.Date.After(cur.Date) || (prev.Date.Equal(cur.Date) && prev.Time > cur.Time) {
					result[j-1], result[j] = cur, prev
				}
			}
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) DeleteAppointment(_ repositories.SQLExecutor, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeAppointmentRepo) GetBookedTimes(date time.Time) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	times := []string{}
	for _, a := range f.appointments {
		if a.Date.Equal(date) {
			times = append(times, a.Time)
		}
	}
	return times, nil
}

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users  []models.User
	hashes map[int64]string
	nextID int64
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{hashes: make(map[int64]string), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ repositories.SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for _, u := range f.users {
		if u.Username == user.Username {
			return 0, repositories.ErrDuplicateKey
		}
	}
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	f.users = append(f.users, stored)
	f.hashes[id] = hashedPassword
	return id, nil
}

func (f *fakeUserRepo) FindUserByUsername(username string) (*models.User, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, f.hashes[u.ID], nil
		}
	}
	return nil, "", repositories.ErrNotFound
}

func (f *fakeUserRepo) FindUserByID(userID int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == userID {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetUsers() ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.User{}, f.users...), nil
}

func (f *fakeUserRepo) UpdateUser(_ repositories.SQLExecutor, userID int64, username, hashedPassword string) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Username == username && u.ID != userID {
			return repositories.ErrDuplicateKey
		}
	}
	for i := range f.users {
		if f.users[i].ID == userID {
			f.users[i].Username = username
			f.hashes[userID] = hashedPassword
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeUserRepo) DeleteUser(_ repositories.SQLExecutor, userID int64) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.users {
		if f.users[i].ID == userID {
			f.users = append(f.users[:i], f.users[i+1:]...)
			delete(f.hashes, userID)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// fakeSessionStore records session operations for auth service tests.
type fakeSessionStore struct {
	data    map[string]sessions.Data
	counter int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{data: make(map[string]sessions.Data)}
}

func (f *fakeSessionStore) Create(_ context.Context, data sessions.Data) (string, error) {
	f.counter++
	id := "sess-" + string(rune('0'+f.counter))
	f.data[id] = data
	return id, nil
}

func (f *fakeSessionStore) Get(_ context.Context, sessionID string) (*sessions.Data, error) {
	data, ok := f.data[sessionID]
	if !ok {
		return nil, sessions.ErrSessionNotFound
	}
	return &data, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(f.data, sessionID)
	return nil
}
