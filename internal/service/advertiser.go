package service

import (
	"context"
	"errors"
	"fmt"

	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/profile"
)

func (o *Orchestrator) loadUser(ctx context.Context, j *job) (*domain.User, error) {
	userID, ok := intParam(j.msg.Body.Data, "userId")
	if !ok {
		return nil, o.fail(ctx, j, CodeMissingParameter, "Missing user ID parameter")
	}

	user, err := o.users.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, o.fail(ctx, j, CodeUserNotFound, fmt.Sprintf("User %d not found", userID))
	}
	if err != nil {
		return nil, o.storageFailed(ctx, j, "get user", err)
	}

	j.logger = j.logger.With("user_id", userID)
	return user, nil
}

func (o *Orchestrator) requireAdvertiser(ctx context.Context, j *job, user *domain.User) error {
	if user.HasRemoteAdvertiser() {
		return nil
	}
	return o.fail(ctx, j, CodeInvalidAppNexusAdvertiser,
		fmt.Sprintf("User %d has no AppNexus advertiser", user.ID))
}

// addAdvertiser creates the AppNexus advertiser of a user. A user that
// already has one gets it updated instead.
func (o *Orchestrator) addAdvertiser(ctx context.Context, j *job) (*domain.JobResponse, error) {
	user, err := o.loadUser(ctx, j)
	if err != nil {
		return nil, err
	}
	if user.HasRemoteAdvertiser() {
		j.logger.Info("advertiser already exists, updating", "advertiser_id", *user.AdvertiserID)
		return o.pushAdvertiser(ctx, j, user)
	}

	id, err := o.remote.AddAdvertiser(ctx, profile.NewAdvertiser(user))
	if err != nil {
		return nil, o.remoteFailed(ctx, j, "add advertiser", err)
	}
	if err := o.users.MarkSynced(ctx, user.ID, &id, o.now()); err != nil {
		return nil, o.persistFailed(ctx, j, "store advertiser id", err)
	}

	return &domain.JobResponse{
		Message: "New AppNexus advertiser added",
		Data: domain.AdvertiserResult{
			UserID:       user.ID,
			AdvertiserID: id,
			Operation:    domain.OperationCreated,
		},
	}, nil
}

func (o *Orchestrator) updateAdvertiser(ctx context.Context, j *job) (*domain.JobResponse, error) {
	user, err := o.loadUser(ctx, j)
	if err != nil {
		return nil, err
	}
	if err := o.requireAdvertiser(ctx, j, user); err != nil {
		return nil, err
	}
	return o.pushAdvertiser(ctx, j, user)
}

func (o *Orchestrator) pushAdvertiser(ctx context.Context, j *job, user *domain.User) (*domain.JobResponse, error) {
	id := *user.AdvertiserID
	if err := o.remote.UpdateAdvertiser(ctx, id, profile.NewAdvertiser(user)); err != nil {
		return nil, o.remoteFailed(ctx, j, "update advertiser", err)
	}
	if err := o.users.MarkSynced(ctx, user.ID, nil, o.now()); err != nil {
		return nil, o.persistFailed(ctx, j, "mark user synced", err)
	}

	return &domain.JobResponse{
		Message: "AppNexus advertiser updated",
		Data: domain.AdvertiserResult{
			UserID:       user.ID,
			AdvertiserID: id,
			Operation:    domain.OperationUpdated,
		},
	}, nil
}

func (o *Orchestrator) deleteAdvertiser(ctx context.Context, j *job) (*domain.JobResponse, error) {
	user, err := o.loadUser(ctx, j)
	if err != nil {
		return nil, err
	}
	if err := o.requireAdvertiser(ctx, j, user); err != nil {
		return nil, err
	}

	id := *user.AdvertiserID
	if err := o.remote.DeleteAdvertiser(ctx, id); err != nil {
		return nil, o.remoteFailed(ctx, j, "delete advertiser", err)
	}
	if err := o.users.ClearAdvertiser(ctx, user.ID, o.now()); err != nil {
		return nil, o.persistFailed(ctx, j, "clear advertiser id", err)
	}

	return &domain.JobResponse{
		Message: "AppNexus advertiser deleted",
		Data: domain.AdvertiserResult{
			UserID:       user.ID,
			AdvertiserID: id,
			Operation:    domain.OperationDeleted,
		},
	}, nil
}
