package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistec/internal/domain/entities"
	"assistec/internal/usecase/interfaces"
	mock_interfaces "assistec/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to entities.TicketStatus
		want     bool
	}{
		{entities.TicketStatusOpen, entities.TicketStatusInProgress, true},
		{entities.TicketStatusOpen, entities.TicketStatusCompleted, false},
		{entities.TicketStatusInProgress, entities.TicketStatusCompleted, true},
		{entities.TicketStatusInProgress, entities.TicketStatusAwaitingReturn, true},
		{entities.TicketStatusQuoteInDraft, entities.TicketStatusQuoteSent, true},
		{entities.TicketStatusQuoteSent, entities.TicketStatusQuoteApproved, true},
		{entities.TicketStatusQuoteSent, entities.TicketStatusQuoteRejected, true},
		{entities.TicketStatusQuoteSent, entities.TicketStatusAwaitingReturn, true},
		{entities.TicketStatusQuoteSent, entities.TicketStatusCompleted, false},
		{entities.TicketStatusQuoteRejected, entities.TicketStatusQuoteInDraft, true},
		{entities.TicketStatusAwaitingReturn, entities.TicketStatusCompleted, true},
		// Field returns re-open completed work orders.
		{entities.TicketStatusCompleted, entities.TicketStatusInProgress, true},
		{entities.TicketStatusCompleted, entities.TicketStatusCancelled, false},
		// Cancelled is terminal.
		{entities.TicketStatusCancelled, entities.TicketStatusOpen, false},
		{entities.TicketStatusCancelled, entities.TicketStatusInProgress, false},
	}

	for _, tc := range cases {
		if got := transitionAllowed(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestTicketUseCase_Create(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	t.Run("invalid client id", func(t *testing.T) {
		uc := NewTicketUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateTicketInput{ClientID: " ", Category: entities.TicketCategoryTechnical, Description: "x"})
		if !errors.Is(err, ErrInvalidClient) {
			t.Fatalf("expected ErrInvalidClient, got %v", err)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		uc := NewTicketUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateTicketInput{ClientID: "c-1", Category: entities.TicketCategoryTechnical, Description: "  "})
		if !errors.Is(err, ErrMissingDescription) {
			t.Fatalf("expected ErrMissingDescription, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		uc := NewTicketUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateTicketInput{ClientID: "c-1", Category: "billing", Description: "x"})
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientDirectory(ctrl)
		uc := NewTicketUseCase(nil, nil, clients, nil)

		clients.EXPECT().GetClient(gomock.Any(), "c-1").Return(interfaces.ClientInfo{}, nil)

		_, err := uc.Create(context.Background(), CreateTicketInput{ClientID: "c-1", Category: entities.TicketCategoryTechnical, Description: "broken compressor"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("create success with monthly number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientDirectory(ctrl)
		uc := NewTicketUseCase(repo, seq, clients, fixedClockAt(ctrl, now))

		clients.EXPECT().GetClient(gomock.Any(), "c-1").Return(interfaces.ClientInfo{ID: "c-1", Name: "Acme"}, nil)
		seq.EXPECT().Next(gomock.Any(), "OS-2608").Return(int64(42), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceTicket{})).DoAndReturn(
			func(_ context.Context, tk entities.ServiceTicket) (entities.ServiceTicket, error) {
				if tk.Number != "OS-260800042" {
					t.Fatalf("unexpected number: %s", tk.Number)
				}
				if tk.Status != entities.TicketStatusOpen || tk.ClientName != "Acme" {
					t.Fatalf("unexpected ticket: %+v", tk)
				}
				if len(tk.History) != 1 || tk.History[0].Action != "created" {
					t.Fatalf("expected creation history entry, got %+v", tk.History)
				}
				return tk, nil
			},
		)

		created, err := uc.Create(context.Background(), CreateTicketInput{
			ClientID:    "c-1",
			Category:    entities.TicketCategoryTechnical,
			Description: "broken compressor",
			Actor:       "maria",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("sequence exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientDirectory(ctrl)
		uc := NewTicketUseCase(repo, seq, clients, fixedClockAt(ctrl, now))

		clients.EXPECT().GetClient(gomock.Any(), "c-1").Return(interfaces.ClientInfo{ID: "c-1", Name: "Acme"}, nil)
		seq.EXPECT().Next(gomock.Any(), "OS-2608").Return(int64(0), errors.New("throttled")).Times(sequenceMaxAttempts)

		_, err := uc.Create(context.Background(), CreateTicketInput{ClientID: "c-1", Category: entities.TicketCategoryTechnical, Description: "x"})
		if !errors.Is(err, ErrSequenceExhausted) {
			t.Fatalf("expected ErrSequenceExhausted, got %v", err)
		}
	})
}

func TestTicketUseCase_Transition(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	t.Run("disallowed edge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.ServiceTicket{ID: "t-1", Status: entities.TicketStatusOpen}, nil)

		_, err := uc.Transition(context.Background(), TransitionInput{TicketID: "t-1", To: entities.TicketStatusCompleted})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("archived ticket refuses transitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		archivedAt := now.Add(-time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.ServiceTicket{ID: "t-1", Status: entities.TicketStatusOpen, ArchivedAt: &archivedAt}, nil)

		_, err := uc.Transition(context.Background(), TransitionInput{TicketID: "t-1", To: entities.TicketStatusInProgress})
		if !errors.Is(err, ErrTicketArchived) {
			t.Fatalf("expected ErrTicketArchived, got %v", err)
		}
	})

	t.Run("transition applies pendings and history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.ServiceTicket{ID: "t-1", Status: entities.TicketStatusQuoteSent}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceTicket{})).DoAndReturn(
			func(_ context.Context, tk entities.ServiceTicket) (entities.ServiceTicket, error) {
				if tk.Status != entities.TicketStatusQuoteApproved {
					t.Fatalf("expected quote_approved, got %s", tk.Status)
				}
				if tk.TechnicalReturn == nil || !tk.TechnicalReturn.PartsRemoved {
					t.Fatalf("expected technical return pending, got %+v", tk.TechnicalReturn)
				}
				last := tk.History[len(tk.History)-1]
				if last.Action != "status:quote_approved" || last.Actor != "joao" {
					t.Fatalf("unexpected history entry: %+v", last)
				}
				return tk, nil
			},
		)

		_, err := uc.Transition(context.Background(), TransitionInput{
			TicketID:        "t-1",
			To:              entities.TicketStatusQuoteApproved,
			Actor:           "joao",
			TechnicalReturn: &entities.TechnicalReturnPending{Summary: "approved items", PartsRemoved: true},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTicketUseCase_Archival(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)

	t.Run("archive keeps status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.ServiceTicket{ID: "t-1", Status: entities.TicketStatusCompleted}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tk entities.ServiceTicket) (entities.ServiceTicket, error) {
				if tk.ArchivedAt == nil || !tk.ArchivedAt.Equal(now) {
					t.Fatalf("expected archived_at %s, got %v", now, tk.ArchivedAt)
				}
				if tk.Status != entities.TicketStatusCompleted {
					t.Fatalf("archive must not change status, got %s", tk.Status)
				}
				return tk, nil
			},
		)

		if _, err := uc.Archive(context.Background(), "t-1", "maria"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("archive twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		archivedAt := now.Add(-time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.ServiceTicket{ID: "t-1", ArchivedAt: &archivedAt}, nil)

		_, err := uc.Archive(context.Background(), "t-1", "maria")
		if !errors.Is(err, ErrTicketArchived) {
			t.Fatalf("expected ErrTicketArchived, got %v", err)
		}
	})

	t.Run("unarchive requires archived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketUseCase(repo, nil, nil, fixedClockAt(ctrl, now))

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.ServiceTicket{ID: "t-1"}, nil)

		_, err := uc.Unarchive(context.Background(), "t-1", "maria")
		if !errors.Is(err, ErrTicketNotArchived) {
			t.Fatalf("expected ErrTicketNotArchived, got %v", err)
		}
	})
}
