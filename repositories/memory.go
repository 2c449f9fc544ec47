package repositories

import (
	"sort"
	"sync"

	"hotel-reservas/models"
)

// MemoryRepository keeps every table in maps. Transactions work on a copy of
// the state that replaces the live one only when fn returns nil.
type MemoryRepository struct {
	mu    sync.Mutex
	state *memoryState
}

type memoryState struct {
	rooms        map[uint]models.Room
	customers    map[uint]models.Customer
	reservations map[uint]models.Reservation

	// last id handed out per table, like an auto-increment column
	lastRoomID        uint
	lastCustomerID    uint
	lastReservationID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		state: &memoryState{
			rooms:        make(map[uint]models.Room),
			customers:    make(map[uint]models.Customer),
			reservations: make(map[uint]models.Reservation),
		},
	}
}

func (s *memoryState) clone() *memoryState {
	c := &memoryState{
		rooms:        make(map[uint]models.Room, len(s.rooms)),
		customers:    make(map[uint]models.Customer, len(s.customers)),
		reservations: make(map[uint]models.Reservation, len(s.reservations)),

		lastRoomID:        s.lastRoomID,
		lastCustomerID:    s.lastCustomerID,
		lastReservationID: s.lastReservationID,
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	return c
}

func (r *MemoryRepository) Transaction(fn func(tx Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.state.clone()
	if err := fn(&memoryTx{st: working}); err != nil {
		return err
	}
	r.state = working
	return nil
}

// run executes fn under the lock as a single-statement transaction.
func (r *MemoryRepository) run(fn func(tx *memoryTx) error) error {
	return r.Transaction(func(tx Repository) error {
		return fn(tx.(*memoryTx))
	})
}

func (r *MemoryRepository) ListRooms(onlyVacant bool) (rooms []models.Room, err error) {
	err = r.run(func(tx *memoryTx) error {
		rooms, err = tx.ListRooms(onlyVacant)
		return err
	})
	return rooms, err
}

func (r *MemoryRepository) FindRoom(id uint) (room *models.Room, err error) {
	err = r.run(func(tx *memoryTx) error {
		room, err = tx.FindRoom(id)
		return err
	})
	return room, err
}

func (r *MemoryRepository) RoomNumberExists(number int) (exists bool, err error) {
	err = r.run(func(tx *memoryTx) error {
		exists, err = tx.RoomNumberExists(number)
		return err
	})
	return exists, err
}

func (r *MemoryRepository) CreateRoom(room *models.Room) error {
	return r.run(func(tx *memoryTx) error { return tx.CreateRoom(room) })
}

func (r *MemoryRepository) UpdateRoomRates(id uint, maxCapacity int, nightlyRate float64) (n int64, err error) {
	err = r.run(func(tx *memoryTx) error {
		n, err = tx.UpdateRoomRates(id, maxCapacity, nightlyRate)
		return err
	})
	return n, err
}

func (r *MemoryRepository) SetRoomVacant(id uint, vacant bool) error {
	return r.run(func(tx *memoryTx) error { return tx.SetRoomVacant(id, vacant) })
}

func (r *MemoryRepository) DeleteRoom(id uint) error {
	return r.run(func(tx *memoryTx) error { return tx.DeleteRoom(id) })
}

func (r *MemoryRepository) ListCustomers() (customers []models.Customer, err error) {
	err = r.run(func(tx *memoryTx) error {
		customers, err = tx.ListCustomers()
		return err
	})
	return customers, err
}

func (r *MemoryRepository) FindCustomer(id uint) (customer *models.Customer, err error) {
	err = r.run(func(tx *memoryTx) error {
		customer, err = tx.FindCustomer(id)
		return err
	})
	return customer, err
}

func (r *MemoryRepository) CreateCustomer(customer *models.Customer) error {
	return r.run(func(tx *memoryTx) error { return tx.CreateCustomer(customer) })
}

func (r *MemoryRepository) UpdateCustomer(customer *models.Customer) (n int64, err error) {
	err = r.run(func(tx *memoryTx) error {
		n, err = tx.UpdateCustomer(customer)
		return err
	})
	return n, err
}

func (r *MemoryRepository) DeleteCustomer(id uint) error {
	return r.run(func(tx *memoryTx) error { return tx.DeleteCustomer(id) })
}

func (r *MemoryRepository) CountReservationsByCustomer(customerID uint) (n int64, err error) {
	err = r.run(func(tx *memoryTx) error {
		n, err = tx.CountReservationsByCustomer(customerID)
		return err
	})
	return n, err
}

func (r *MemoryRepository) ListReservations() (reservations []models.Reservation, err error) {
	err = r.run(func(tx *memoryTx) error {
		reservations, err = tx.ListReservations()
		return err
	})
	return reservations, err
}

func (r *MemoryRepository) FindReservation(id uint) (reservation *models.Reservation, err error) {
	err = r.run(func(tx *memoryTx) error {
		reservation, err = tx.FindReservation(id)
		return err
	})
	return reservation, err
}

func (r *MemoryRepository) CreateReservation(reservation *models.Reservation) error {
	return r.run(func(tx *memoryTx) error { return tx.CreateReservation(reservation) })
}

func (r *MemoryRepository) SaveReservation(reservation *models.Reservation) error {
	return r.run(func(tx *memoryTx) error { return tx.SaveReservation(reservation) })
}

func (r *MemoryRepository) DeleteReservation(id uint) error {
	return r.run(func(tx *memoryTx) error { return tx.DeleteReservation(id) })
}

// memoryTx operates on one state without locking; MemoryRepository holds the lock.
type memoryTx struct {
	st *memoryState
}

func (tx *memoryTx) Transaction(fn func(tx Repository) error) error {
	return fn(tx)
}

func nextID(last *uint) uint {
	*last++
	return *last
}

func (tx *memoryTx) ListRooms(onlyVacant bool) ([]models.Room, error) {
	rooms := make([]models.Room, 0, len(tx.st.rooms))
	for _, room := range tx.st.rooms {
		if onlyVacant && !room.Vacant {
			continue
		}
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

func (tx *memoryTx) FindRoom(id uint) (*models.Room, error) {
	room, ok := tx.st.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (tx *memoryTx) RoomNumberExists(number int) (bool, error) {
	for _, room := range tx.st.rooms {
		if room.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (tx *memoryTx) CreateRoom(room *models.Room) error {
	if exists, _ := tx.RoomNumberExists(room.Number); exists {
		return &DuplicateError{Field: "numero"}
	}
	room.ID = nextID(&tx.st.lastRoomID)
	tx.st.rooms[room.ID] = *room
	return nil
}

func (tx *memoryTx) UpdateRoomRates(id uint, maxCapacity int, nightlyRate float64) (int64, error) {
	room, ok := tx.st.rooms[id]
	if !ok {
		return 0, nil
	}
	room.MaxCapacity = maxCapacity
	room.NightlyRate = nightlyRate
	tx.st.rooms[id] = room
	return 1, nil
}

func (tx *memoryTx) SetRoomVacant(id uint, vacant bool) error {
	room, ok := tx.st.rooms[id]
	if !ok {
		return nil
	}
	room.Vacant = vacant
	tx.st.rooms[id] = room
	return nil
}

// DeleteRoom cascades to the room's reservations like the quarto_id foreign key.
func (tx *memoryTx) DeleteRoom(id uint) error {
	delete(tx.st.rooms, id)
	for rid, reservation := range tx.st.reservations {
		if reservation.RoomID == id {
			delete(tx.st.reservations, rid)
		}
	}
	return nil
}

func (tx *memoryTx) ListCustomers() ([]models.Customer, error) {
	customers := make([]models.Customer, 0, len(tx.st.customers))
	for _, customer := range tx.st.customers {
		customers = append(customers, customer)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (tx *memoryTx) FindCustomer(id uint) (*models.Customer, error) {
	customer, ok := tx.st.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &customer, nil
}

func (tx *memoryTx) customerConflict(customer *models.Customer) error {
	for _, other := range tx.st.customers {
		if other.ID == customer.ID {
			continue
		}
		if other.Phone == customer.Phone {
			return &DuplicateError{Field: "celular"}
		}
		if other.Email == customer.Email {
			return &DuplicateError{Field: "email"}
		}
	}
	return nil
}

func (tx *memoryTx) CreateCustomer(customer *models.Customer) error {
	customer.ID = 0
	if err := tx.customerConflict(customer); err != nil {
		return err
	}
	customer.ID = nextID(&tx.st.lastCustomerID)
	tx.st.customers[customer.ID] = *customer
	return nil
}

func (tx *memoryTx) UpdateCustomer(customer *models.Customer) (int64, error) {
	if _, ok := tx.st.customers[customer.ID]; !ok {
		return 0, nil
	}
	if err := tx.customerConflict(customer); err != nil {
		return 0, err
	}
	tx.st.customers[customer.ID] = *customer
	return 1, nil
}

// DeleteCustomer cascades to the customer's reservations like the cliente_id foreign key.
func (tx *memoryTx) DeleteCustomer(id uint) error {
	delete(tx.st.customers, id)
	for rid, reservation := range tx.st.reservations {
		if reservation.CustomerID == id {
			delete(tx.st.reservations, rid)
		}
	}
	return nil
}

func (tx *memoryTx) CountReservationsByCustomer(customerID uint) (int64, error) {
	var n int64
	for _, reservation := range tx.st.reservations {
		if reservation.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (tx *memoryTx) ListReservations() ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0, len(tx.st.reservations))
	for _, reservation := range tx.st.reservations {
		reservation.Room = tx.st.rooms[reservation.RoomID]
		reservation.Customer = tx.st.customers[reservation.CustomerID]
		reservations = append(reservations, reservation)
	}
	sort.Slice(reservations, func(i, j int) bool { return reservations[i].ID < reservations[j].ID })
	return reservations, nil
}

func (tx *memoryTx) FindReservation(id uint) (*models.Reservation, error) {
	reservation, ok := tx.st.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &reservation, nil
}

func (tx *memoryTx) CreateReservation(reservation *models.Reservation) error {
	reservation.ID = nextID(&tx.st.lastReservationID)
	tx.store(reservation)
	return nil
}

func (tx *memoryTx) SaveReservation(reservation *models.Reservation) error {
	if reservation.ID == 0 {
		return tx.CreateReservation(reservation)
	}
	tx.store(reservation)
	return nil
}

func (tx *memoryTx) store(reservation *models.Reservation) {
	stored := *reservation
	stored.Room = models.Room{}
	stored.Customer = models.Customer{}
	tx.st.reservations[stored.ID] = stored
}

func (tx *memoryTx) DeleteReservation(id uint) error {
	delete(tx.st.reservations, id)
	return nil
}
