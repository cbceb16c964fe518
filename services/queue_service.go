package services

import (
	"time"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"
)

// MinutesPerOrder is the assumed service rate behind the wait estimate.
const MinutesPerOrder = 4

type QueueService struct {
	Repo *repository.OrderRepository
	Now  func() time.Time
}

func NewQueueService(repo *repository.OrderRepository) *QueueService {
	return &QueueService{Repo: repo, Now: time.Now}
}

// QueueEntry is one row on the public queue screen.
type QueueEntry struct {
	ID               uint      `json:"id"`
	CustomerName     string    `json:"customer_name"`
	CreatedAt        time.Time `json:"created_at"`
	Status           string    `json:"status"`
	PickedUp         bool      `json:"picked_up"`
	DeliveryType     string    `json:"delivery_type"`
	DeliveryLocation string    `json:"delivery_location"`
	Ready            bool      `json:"ready"`
	EstimatedWaitMin int       `json:"estimated_wait_min"`
}

// List returns the queue with wait estimates. Each pending order waits four
// minutes per order ahead of it, anchored to how long the head order has
// actually been on the fire; completed-not-picked-up orders show as ready
// with no estimate.
func (s *QueueService) List() ([]QueueEntry, error) {
	orders, err := s.Repo.ListQueue()
	if err != nil {
		return nil, err
	}

	now := s.Now()
	headRemaining := 0.0
	pendingIdx := 0
	out := make([]QueueEntry, 0, len(orders))
	for _, o := range orders {
		e := QueueEntry{
			ID:               o.ID,
			CustomerName:     o.CustomerName,
			CreatedAt:        o.CreatedAt,
			Status:           o.Status,
			PickedUp:         o.PickedUp,
			DeliveryType:     o.DeliveryType,
			DeliveryLocation: o.DeliveryLocation,
		}
		if o.Status == entity.StatusCompleted {
			e.Ready = true
			out = append(out, e)
			continue
		}

		if pendingIdx == 0 {
			elapsed := now.Sub(o.CreatedAt).Minutes()
			headRemaining = float64(MinutesPerOrder) - elapsed
			if headRemaining < 0 {
				headRemaining = 0
			}
		}
		e.EstimatedWaitMin = pendingIdx*MinutesPerOrder + int(headRemaining)
		pendingIdx++
		out = append(out, e)
	}
	return out, nil
}
