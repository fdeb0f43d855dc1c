package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"
	mock_interfaces "github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInformationRequestUseCase_Create(t *testing.T) {
	t.Run("invalid asset id", func(t *testing.T) {
		uc := NewInformationRequestUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "  ", "user-1", "")
		if !errors.Is(err, ErrInvalidAssetID) {
			t.Fatalf("expected ErrInvalidAssetID, got %v", err)
		}
	})

	t.Run("invalid requester id", func(t *testing.T) {
		uc := NewInformationRequestUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "asset-1", "", "")
		if !errors.Is(err, ErrInvalidRequesterID) {
			t.Fatalf("expected ErrInvalidRequesterID, got %v", err)
		}
	})

	t.Run("asset not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInformationRequestRepository(ctrl)
		assets := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewInformationRequestUseCase(repo, assets)

		assets.EXPECT().GetByID(gomock.Any(), "asset-1").Return(entities.Asset{}, nil)

		_, err := uc.Create(context.Background(), "asset-1", "user-1", "")
		if !errors.Is(err, ErrAssetNotFound) {
			t.Fatalf("expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("success with pending status and composite key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInformationRequestRepository(ctrl)
		assets := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewInformationRequestUseCase(repo, assets)

		assets.EXPECT().GetByID(gomock.Any(), "asset-1").Return(entities.Asset{ID: "asset-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InformationRequest{})).DoAndReturn(
			func(_ context.Context, r entities.InformationRequest) (entities.InformationRequest, error) {
				if r.ID != "asset-1#user-1" || r.Status != entities.RequestStatusPending {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.Create(context.Background(), " asset-1 ", " user-1 ", " quiero más información ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Note != "quiero más información" {
			t.Fatalf("note not trimmed: %q", res.Note)
		}
	})

	t.Run("duplicate pair yields duplicate error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInformationRequestRepository(ctrl)
		assets := mock_interfaces.NewMockIAssetRepository(ctrl)
		uc := NewInformationRequestUseCase(repo, assets)

		assets.EXPECT().GetByID(gomock.Any(), "asset-1").Return(entities.Asset{ID: "asset-1"}, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r entities.InformationRequest) (entities.InformationRequest, error) {
					return r, nil
				},
			),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InformationRequest{}, interfaces.ErrAlreadyExists),
		)

		// Same (asset, requester) pair twice: exactly one success, one conflict.
		if _, err := uc.Create(context.Background(), "asset-1", "user-1", ""); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		_, err := uc.Create(context.Background(), "asset-1", "user-1", "")
		if !errors.Is(err, ErrDuplicateRequest) {
			t.Fatalf("expected ErrDuplicateRequest, got %v", err)
		}
	})
}

func TestInformationRequestUseCase_Transitions(t *testing.T) {
	cases := []struct {
		name string
		call func(uc *InformationRequestUseCase, ctx context.Context, id string) (entities.InformationRequest, error)
		from entities.RequestStatus
		to   entities.RequestStatus
	}{
		{name: "approve", call: (*InformationRequestUseCase).Approve, from: entities.RequestStatusPending, to: entities.RequestStatusApproved},
		{name: "reject", call: (*InformationRequestUseCase).Reject, from: entities.RequestStatusPending, to: entities.RequestStatusRejected},
		{name: "request nda", call: (*InformationRequestUseCase).RequestNDA, from: entities.RequestStatusApproved, to: entities.RequestStatusNDARequested},
		{name: "confirm nda", call: (*InformationRequestUseCase).ConfirmNDA, from: entities.RequestStatusNDARequested, to: entities.RequestStatusNDAReceived},
		{name: "share", call: (*InformationRequestUseCase).ShareInformation, from: entities.RequestStatusNDAReceived, to: entities.RequestStatusInformationShared},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIInformationRequestRepository(ctrl)
			uc := NewInformationRequestUseCase(repo, nil)

			repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.InformationRequest{ID: "req-1", Status: tc.from}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", tc.from, tc.to).Return(entities.InformationRequest{ID: "req-1", Status: tc.to}, nil)

			res, err := tc.call(uc, context.Background(), "req-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.to {
				t.Fatalf("expected %s got %s", tc.to, res.Status)
			}
		})
	}

	t.Run("invalid transition is rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInformationRequestRepository(ctrl)
		uc := NewInformationRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.InformationRequest{ID: "req-1", Status: entities.RequestStatusRejected}, nil)

		_, err := uc.Approve(context.Background(), "req-1")
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("lost compare-and-swap surfaces as state conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInformationRequestRepository(ctrl)
		uc := NewInformationRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.InformationRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusPending, entities.RequestStatusApproved).
			Return(entities.InformationRequest{}, interfaces.ErrConditionFailed)

		_, err := uc.Approve(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestStateConflict) {
			t.Fatalf("expected ErrRequestStateConflict, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInformationRequestRepository(ctrl)
		uc := NewInformationRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.InformationRequest{}, nil)

		_, err := uc.Approve(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

func TestInformationRequestUseCase_ListForRequester(t *testing.T) {
	t.Run("invalid requester", func(t *testing.T) {
		uc := NewInformationRequestUseCase(nil, nil)
		_, err := uc.ListForRequester(context.Background(), " ")
		if !errors.Is(err, ErrInvalidRequesterID) {
			t.Fatalf("expected ErrInvalidRequesterID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInformationRequestRepository(ctrl)
		uc := NewInformationRequestUseCase(repo, nil)

		expected := []entities.InformationRequest{{ID: "a#u", RequesterID: "u"}}
		repo.EXPECT().ListByRequester(gomock.Any(), "u").Return(expected, nil)

		got, err := uc.ListForRequester(context.Background(), "u")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
