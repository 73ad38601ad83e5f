package domain

import "time"

// Job lifecycle statuses, as stored in the job log.
const (
	JobStatusWaiting  = "waiting"
	JobStatusRunning  = "running"
	JobStatusComplete = "complete"
	JobStatusFailed   = "failed"

	// ResponseStatusOK acknowledges an enqueued job.
	ResponseStatusOK = "ok"
)

const (
	ActionAddAdvertiser    = "addAdvertiser"
	ActionUpdateAdvertiser = "updateAdvertiser"
	ActionDeleteAdvertiser = "deleteAdvertiser"
	ActionSyncDomains      = "syncAppNexusDomains"
	ActionSyncProfile      = "syncAppNexusCampaignProfile"
	ActionSyncLineItem     = "syncAppNexusLineItem"
	ActionSyncCampaign     = "syncAppNexusCampaign"
	ActionSyncStatus       = "syncStatus"
)

const (
	JobTypeAdvertiser = "AppNexusAdvertiserJob"
	JobTypeCampaign   = "AppNexusCampaignJob"
)

// JobTypeFor returns the job class an action belongs to, or "" if unknown.
func JobTypeFor(action string) string {
	switch action {
	case ActionAddAdvertiser, ActionUpdateAdvertiser, ActionDeleteAdvertiser:
		return JobTypeAdvertiser
	case ActionSyncDomains, ActionSyncProfile, ActionSyncLineItem, ActionSyncCampaign, ActionSyncStatus:
		return JobTypeCampaign
	default:
		return ""
	}
}

// DefaultJobTTL is the time-to-live in seconds given to enqueued jobs.
const DefaultJobTTL = 3600

// JobMessage is the queue payload of one job.
type JobMessage struct {
	UUID string   `json:"uuid"`
	Body *JobBody `json:"body"`
	TTL  int      `json:"ttl"`
}

type JobBody struct {
	Action string         `json:"action"`
	Data   map[string]any `json:"data"`
}

type JobResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type JobLogEntry struct {
	ID        int64     `db:"id"`
	UUID      string    `db:"uuid"`
	Type      string    `db:"type"`
	Action    string    `db:"action"`
	Payload   string    `db:"payload"`
	Status    string    `db:"status"`
	Code      string    `db:"code"`
	Message   string    `db:"message"`
	Queue     string    `db:"queue"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// InventoryResult describes what a campaign job did with one inventory line.
type InventoryResult struct {
	InventoryID      int64  `json:"inventoryId"`
	Type             string `json:"type"`
	Operation        string `json:"operation"` // created, updated, deactivated
	ProfileID        *int64 `json:"appNexusProfileId,omitempty"`
	LineItemID       *int64 `json:"appNexusLineItemId,omitempty"`
	RemoteCampaignID *int64 `json:"appNexusCampaignId,omitempty"`
	Notice           string `json:"notice,omitempty"`
}

// DomainListResult describes what a domains job did for one direction.
type DomainListResult struct {
	Direction    string `json:"direction"`
	DomainListID int64  `json:"appNexusDomainListId"`
	Operation    string `json:"operation"`
	Domains      int    `json:"domains"`
}

// AdvertiserResult describes what an advertiser job did.
type AdvertiserResult struct {
	UserID       int64  `json:"userId"`
	AdvertiserID int64  `json:"appNexusAdvertiserId"`
	Operation    string `json:"operation"`
}

const (
	OperationCreated     = "created"
	OperationUpdated     = "updated"
	OperationDeactivated = "deactivated"
	OperationDeleted     = "deleted"
)
