package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"slotScheduler/internal/config"
	"slotScheduler/internal/models"
	"slotScheduler/internal/storage"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return s, nil
}

// bootstrap creates the tables on first start. bookings.slot_id and
// attendance_answers.slot_id deliberately carry no foreign key: deleting a
// slot must leave booking history behind, it just stops joining.
func (s *Storage) bootstrap() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS menus (
			id SERIAL PRIMARY KEY,
			kind TEXT NOT NULL CHECK (kind IN ('reservation', 'adjustment')),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			duration_minutes INT NOT NULL DEFAULT 0,
			owner_key TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS slots (
			id SERIAL PRIMARY KEY,
			menu_id INT NOT NULL REFERENCES menus(id),
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			max_capacity INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			slot_id INT NOT NULL,
			user_id TEXT NOT NULL DEFAULT '',
			guest_name TEXT NOT NULL DEFAULT '',
			guest_email TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'ok',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_responses (
			id SERIAL PRIMARY KEY,
			menu_id INT NOT NULL REFERENCES menus(id),
			participant_name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_answers (
			response_id INT NOT NULL REFERENCES attendance_responses(id) ON DELETE CASCADE,
			slot_id INT NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('yes', 'no', 'maybe')),
			PRIMARY KEY (response_id, slot_id)
		)`,
	}

	for _, stmt := range schema {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// validateNewSlots returns the positions of candidates that may not be
// persisted: start not strictly in the future, or end not after start.
func validateNewSlots(slots []models.NewSlot, now time.Time) []int {
	var bad []int
	for i, ns := range slots {
		if !ns.StartTime.After(now) || !ns.EndTime.After(ns.StartTime) {
			bad = append(bad, i)
		}
	}
	return bad
}

func (s *Storage) CreateMenu(kind, title, description string, duration int, slots []models.NewSlot) (*models.Menu, []models.Slot, error) {
	if bad := validateNewSlots(slots, time.Now()); len(bad) > 0 {
		return nil, nil, &storage.InvalidSlotsError{Indices: bad}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	menu := models.Menu{
		Kind:            kind,
		Title:           title,
		Description:     description,
		DurationMinutes: duration,
		OwnerKey:        uuid.NewString(),
		Active:          true,
	}

	query := `
		INSERT INTO menus (kind, title, description, duration_minutes, owner_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err = tx.QueryRow(query, menu.Kind, menu.Title, menu.Description, menu.DurationMinutes, menu.OwnerKey).
		Scan(&menu.ID, &menu.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create menu: %w", err)
	}

	created, err := insertSlots(tx, menu.ID, slots)
	if err != nil {
		return nil, nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &menu, created, nil
}

func insertSlots(tx *sql.Tx, menuID int, slots []models.NewSlot) ([]models.Slot, error) {
	query := `
		INSERT INTO slots (menu_id, start_time, end_time, max_capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	created := make([]models.Slot, 0, len(slots))
	for _, ns := range slots {
		slot := models.Slot{
			MenuID:      menuID,
			StartTime:   ns.StartTime,
			EndTime:     ns.EndTime,
			MaxCapacity: ns.MaxCapacity,
		}
		if err := tx.QueryRow(query, menuID, ns.StartTime, ns.EndTime, ns.MaxCapacity).Scan(&slot.ID); err != nil {
			return nil, fmt.Errorf("failed to create slot: %w", err)
		}
		created = append(created, slot)
	}

	return created, nil
}

func (s *Storage) UpdateMenu(menuID int, ownerKey, title, description string, active bool) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = checkOwner(tx, menuID, ownerKey); err != nil {
		return err
	}

	query := `
		UPDATE menus
		SET title = $1, description = $2, active = $3
		WHERE id = $4`

	if _, err = tx.Exec(query, title, description, active, menuID); err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}

	return tx.Commit()
}

// checkOwner locks the menu row and verifies the caller's key. Ownership is
// proven by the key handed out at creation, never by a client-side claim.
func checkOwner(tx *sql.Tx, menuID int, ownerKey string) error {
	var storedKey string
	err := tx.QueryRow(`SELECT owner_key FROM menus WHERE id = $1 FOR UPDATE`, menuID).Scan(&storedKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.ErrMenuNotFound
		}
		return fmt.Errorf("failed to get menu owner: %w", err)
	}

	if storedKey != ownerKey {
		return storage.ErrNotOwner
	}

	return nil
}

func (s *Storage) CreateSlots(menuID int, ownerKey string, slots []models.NewSlot) ([]models.Slot, error) {
	if bad := validateNewSlots(slots, time.Now()); len(bad) > 0 {
		return nil, &storage.InvalidSlotsError{Indices: bad}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = checkOwner(tx, menuID, ownerKey); err != nil {
		return nil, err
	}

	created, err := insertSlots(tx, menuID, slots)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

func (s *Storage) DeleteSlot(slotID int, ownerKey string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var menuID int
	err = tx.QueryRow(`SELECT menu_id FROM slots WHERE id = $1`, slotID).Scan(&menuID)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.ErrSlotNotFound
		}
		return fmt.Errorf("failed to get slot: %w", err)
	}

	if err = checkOwner(tx, menuID, ownerKey); err != nil {
		return err
	}

	// Bookings keep their rows; with the slot gone they no longer join into
	// availability or tallies.
	if _, err = tx.Exec(`DELETE FROM attendance_answers WHERE slot_id = $1`, slotID); err != nil {
		return fmt.Errorf("failed to delete slot answers: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM slots WHERE id = $1`, slotID); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	return tx.Commit()
}

// ListSlots returns the slots of an active reservation menu starting at or
// after from, each with its count of active bookings.
func (s *Storage) ListSlots(menuID int, from time.Time) ([]models.SlotCount, error) {
	var kind string
	var active bool
	err := s.DB.QueryRow(`SELECT kind, active FROM menus WHERE id = $1`, menuID).Scan(&kind, &active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	if !active {
		return nil, storage.ErrMenuNotFound
	}
	if kind != models.KindReservation {
		return nil, storage.ErrNotBookable
	}

	query := `
		SELECT s.id, s.menu_id, s.start_time, s.end_time, s.max_capacity, COUNT(b.id)
		FROM slots s
		LEFT JOIN bookings b ON b.slot_id = s.id AND b.status = 'ok'
		WHERE s.menu_id = $1 AND s.start_time >= $2
		GROUP BY s.id
		ORDER BY s.start_time ASC, s.id ASC`

	rows, err := s.DB.Query(query, menuID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	var slots []models.SlotCount
	for rows.Next() {
		var sc models.SlotCount
		err = rows.Scan(&sc.ID, &sc.MenuID, &sc.StartTime, &sc.EndTime, &sc.MaxCapacity, &sc.ActiveBookings)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, sc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slots: %w", err)
	}

	return slots, nil
}

// SubmitBooking inserts a booking only if the slot still has capacity.
//
// The capacity check and the insert run in one transaction with the slot row
// locked (SELECT ... FOR UPDATE), so submissions against the same slot are
// serialized and count(status='ok') <= max_capacity holds no matter how many
// writers race. A plain read-then-insert would let two requests both observe
// the last free unit and both commit.
func (s *Storage) SubmitBooking(slotID int, holder models.Holder) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	slotQuery := `
		SELECT s.start_time, s.max_capacity, m.kind, m.active
		FROM slots s
		JOIN menus m ON m.id = s.menu_id
		WHERE s.id = $1
		FOR UPDATE OF s`

	var startTime time.Time
	var maxCapacity int
	var kind string
	var active bool
	err = tx.QueryRow(slotQuery, slotID).Scan(&startTime, &maxCapacity, &kind, &active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	if !active {
		return nil, storage.ErrSlotNotFound
	}
	if kind != models.KindReservation {
		return nil, storage.ErrNotBookable
	}
	if !startTime.After(time.Now()) {
		return nil, storage.ErrSlotInPast
	}

	var activeBookings int
	countQuery := `SELECT COUNT(*) FROM bookings WHERE slot_id = $1 AND status = 'ok'`
	if err = tx.QueryRow(countQuery, slotID).Scan(&activeBookings); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	if activeBookings >= maxCapacity {
		return nil, storage.ErrSlotFull
	}

	booking := models.Booking{
		SlotID:     slotID,
		UserID:     holder.UserID,
		GuestName:  holder.GuestName,
		GuestEmail: holder.GuestEmail,
		Status:     models.BookingStatusOK,
	}

	insertQuery := `
		INSERT INTO bookings (slot_id, user_id, guest_name, guest_email, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err = tx.QueryRow(insertQuery, slotID, holder.UserID, holder.GuestName, holder.GuestEmail, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &booking, nil
}

// CancelBooking moves a booking from ok to cancelled. Cancelling an already
// cancelled booking succeeds without touching anything, so retries are safe
// and capacity is freed exactly once.
func (s *Storage) CancelBooking(bookingID int, actor models.Actor) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The menu may be gone if the slot was deleted; the holder can still
	// cancel, only the owner-key path needs the join.
	query := `
		SELECT b.status, b.user_id, b.guest_email, m.owner_key
		FROM bookings b
		LEFT JOIN slots s ON s.id = b.slot_id
		LEFT JOIN menus m ON m.id = s.menu_id
		WHERE b.id = $1
		FOR UPDATE OF b`

	var status, userID, guestEmail string
	var ownerKey sql.NullString
	err = tx.QueryRow(query, bookingID).Scan(&status, &userID, &guestEmail, &ownerKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	allowed := (actor.OwnerKey != "" && ownerKey.Valid && actor.OwnerKey == ownerKey.String) ||
		(actor.UserID != "" && actor.UserID == userID) ||
		(actor.GuestEmail != "" && strings.EqualFold(actor.GuestEmail, guestEmail))
	if !allowed {
		return storage.ErrNotAllowed
	}

	if status == models.BookingStatusCancelled {
		return tx.Commit()
	}

	if _, err = tx.Exec(`UPDATE bookings SET status = 'cancelled' WHERE id = $1`, bookingID); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return tx.Commit()
}

// ReplaceResponse stores a participant's answer set for an adjustment menu.
// (menu, lowercased participant name) is the logical key: an earlier set
// under the same name is removed in the same transaction.
func (s *Storage) ReplaceResponse(menuID int, resp models.NewResponse) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var kind string
	var active bool
	err = tx.QueryRow(`SELECT kind, active FROM menus WHERE id = $1`, menuID).Scan(&kind, &active)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.ErrMenuNotFound
		}
		return fmt.Errorf("failed to get menu: %w", err)
	}
	if !active || kind != models.KindAdjustment {
		return storage.ErrMenuNotFound
	}

	known := make(map[int]bool)
	rows, err := tx.Query(`SELECT id FROM slots WHERE menu_id = $1`, menuID)
	if err != nil {
		return fmt.Errorf("failed to list slots: %w", err)
	}
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan slot id: %w", err)
		}
		known[id] = true
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating slot ids: %w", err)
	}

	for slotID := range resp.Answers {
		if !known[slotID] {
			return storage.ErrUnknownSlot
		}
	}

	deleteQuery := `
		DELETE FROM attendance_responses
		WHERE menu_id = $1 AND LOWER(participant_name) = LOWER($2)`

	if _, err = tx.Exec(deleteQuery, menuID, resp.ParticipantName); err != nil {
		return fmt.Errorf("failed to replace previous response: %w", err)
	}

	var responseID int
	insertQuery := `
		INSERT INTO attendance_responses (menu_id, participant_name, email, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err = tx.QueryRow(insertQuery, menuID, resp.ParticipantName, resp.Email, resp.Comment).Scan(&responseID)
	if err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}

	answerQuery := `INSERT INTO attendance_answers (response_id, slot_id, status) VALUES ($1, $2, $3)`
	for slotID, status := range resp.Answers {
		if _, err = tx.Exec(answerQuery, responseID, slotID, status); err != nil {
			return fmt.Errorf("failed to create answer: %w", err)
		}
	}

	return tx.Commit()
}

// GetAttendanceTable loads everything the attendance view is built from: the
// menu, its slots in start order and all responses with their answers.
func (s *Storage) GetAttendanceTable(menuID int) (*models.Menu, []models.Slot, []models.AttendanceResponse, error) {
	var menu models.Menu
	menuQuery := `
		SELECT id, kind, title, description, duration_minutes, active, created_at
		FROM menus
		WHERE id = $1`

	err := s.DB.QueryRow(menuQuery, menuID).Scan(
		&menu.ID,
		&menu.Kind,
		&menu.Title,
		&menu.Description,
		&menu.DurationMinutes,
		&menu.Active,
		&menu.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, nil, storage.ErrMenuNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to get menu: %w", err)
	}
	if !menu.Active || menu.Kind != models.KindAdjustment {
		return nil, nil, nil, storage.ErrMenuNotFound
	}

	slotQuery := `
		SELECT id, menu_id, start_time, end_time, max_capacity
		FROM slots
		WHERE menu_id = $1
		ORDER BY start_time ASC, id ASC`

	rows, err := s.DB.Query(slotQuery, menuID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	var slots []models.Slot
	for rows.Next() {
		var slot models.Slot
		err = rows.Scan(&slot.ID, &slot.MenuID, &slot.StartTime, &slot.EndTime, &slot.MaxCapacity)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("error iterating slots: %w", err)
	}

	responses, err := s.listResponses(menuID)
	if err != nil {
		return nil, nil, nil, err
	}

	return &menu, slots, responses, nil
}

func (s *Storage) listResponses(menuID int) ([]models.AttendanceResponse, error) {
	query := `
		SELECT id, menu_id, participant_name, email, comment, created_at
		FROM attendance_responses
		WHERE menu_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := s.DB.Query(query, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	var responses []models.AttendanceResponse
	byID := make(map[int]int)
	for rows.Next() {
		var resp models.AttendanceResponse
		err = rows.Scan(&resp.ID, &resp.MenuID, &resp.ParticipantName, &resp.Email, &resp.Comment, &resp.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		resp.Answers = make(map[int]string)
		byID[resp.ID] = len(responses)
		responses = append(responses, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responses: %w", err)
	}

	answerQuery := `
		SELECT a.response_id, a.slot_id, a.status
		FROM attendance_answers a
		JOIN attendance_responses r ON r.id = a.response_id
		WHERE r.menu_id = $1`

	answerRows, err := s.DB.Query(answerQuery, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer answerRows.Close()

	for answerRows.Next() {
		var responseID, slotID int
		var status string
		if err = answerRows.Scan(&responseID, &slotID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		if i, ok := byID[responseID]; ok {
			responses[i].Answers[slotID] = status
		}
	}
	if err = answerRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answers: %w", err)
	}

	return responses, nil
}
