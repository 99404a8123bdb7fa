package types

import (
	"time"
)

type NodeRole string

const (
	NodeRoleHub  NodeRole = "Hub"
	NodeRoleEdge NodeRole = "Edge"
)

// NodeSettings is the singleton configuration that decides whether this
// process acts as a hub or as an edge syncing against a hub.
type NodeSettings struct {
	Role            NodeRole `json:"role"`
	HubURL          string   `json:"hubUrl,omitempty"`
	HubToken        string   `json:"hubToken,omitempty"`
	DataSyncSeconds int      `json:"dataSyncSeconds,omitempty"`
}

func (s NodeSettings) EdgeConfigured() bool {
	return s.Role == NodeRoleEdge && s.HubURL != "" && s.HubToken != ""
}

// EdgeNode is a hub side registration of a field deployed edge node.
type EdgeNode struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Token             string     `json:"token"`
	UpdateRateSeconds int        `json:"updateRateSeconds"`
	LastHeartbeat     *time.Time `json:"lastHeartbeat,omitempty"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Sensor struct {
	ID               string  `json:"id"`
	Tag              string  `json:"tag"`
	Name             string  `json:"name"`
	Unit             *string `json:"unit,omitempty"`
	AccuracyDecimals *int    `json:"accuracyDecimals,omitempty"`
	Order            int     `json:"order"`
	Group            *string `json:"group,omitempty"`
}

type Command struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Name        string    `json:"name"`
	Params      []float64 `json:"params,omitempty"`
}

type RecipeStep struct {
	ID          string  `json:"id"`
	CommandID   *string `json:"commandId,omitempty"`
	SubrecipeID *string `json:"subrecipeId,omitempty"`
	Cycles      int     `json:"cycles"`
	Order       int     `json:"order"`
}

type Recipe struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Steps []RecipeStep `json:"steps,omitempty"`
}

type Control struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Type        int     `json:"type"`
	RecipeID    *string `json:"recipeId,omitempty"`
	RecipeOnID  *string `json:"recipeOnId,omitempty"`
	RecipeOffID *string `json:"recipeOffId,omitempty"`
	SensorID    *string `json:"sensorId,omitempty"`
	Cycles      int     `json:"cycles"`
	IsInfinite  bool    `json:"isInfinite"`
	Order       int     `json:"order"`
}

type Firmware struct {
	ID               string `json:"id"`
	VersionNumber    string `json:"versionNumber"`
	IsActive         bool   `json:"isActive"`
	OriginalFileName string `json:"originalFileName"`
	StoredFileName   string `json:"storedFileName"`
}

// Template is the device template aggregate. OwnerEmail carries the owner
// reference on the wire, since hub and edge do not share user ids.
type Template struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OwnerEmail     string `json:"ownerEmail"`
	DeviceType     int    `json:"deviceType"`
	IsGlobal       bool   `json:"isGlobal"`
	EnableMap      bool   `json:"enableMap"`
	EnableGrid     bool   `json:"enableGrid"`
	GridRowSpan    *int   `json:"gridRowSpan,omitempty"`
	GridColumnSpan *int   `json:"gridColumnSpan,omitempty"`

	Sensors   []Sensor   `json:"sensors,omitempty"`
	Commands  []Command  `json:"commands,omitempty"`
	Recipes   []Recipe   `json:"recipes,omitempty"`
	Controls  []Control  `json:"controls,omitempty"`
	Firmwares []Firmware `json:"firmwares,omitempty"`

	SyncedFromHub bool `json:"-"`
}

type Device struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	OwnerEmail             string   `json:"ownerEmail"`
	Mac                    *string  `json:"mac,omitempty"`
	AccessToken            string   `json:"accessToken"`
	Protocol               int      `json:"protocol"`
	DataPointRetentionDays *int     `json:"dataPointRetentionDays,omitempty"`
	SampleRateSeconds      *float64 `json:"sampleRateSeconds,omitempty"`
	CurrentFirmwareVersion *string  `json:"currentFirmwareVersion,omitempty"`
	TemplateID             *string  `json:"templateId,omitempty"`

	SyncedFromHub        bool    `json:"-"`
	SyncedFromEdge       bool    `json:"-"`
	SyncedFromEdgeNodeID *string `json:"-"`
}

// Snapshot is the full exportable catalog a hub serves to an edge.
type Snapshot struct {
	Templates []Template `json:"templates"`
	Devices   []Device   `json:"devices"`
}

type Datapoint struct {
	DeviceID        string   `json:"deviceId"`
	SensorTag       string   `json:"sensorTag"`
	Value           float64  `json:"value"`
	TimestampUnixMs int64    `json:"timestampUnixMs"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	GridX           *int     `json:"gridX,omitempty"`
	GridY           *int     `json:"gridY,omitempty"`
}

type SyncDatapointsRequest struct {
	Datapoints []Datapoint `json:"datapoints"`
}

type SyncDatapointsResponse struct {
	NextSyncSeconds int    `json:"nextSyncSeconds"`
	AcceptedCount   int    `json:"acceptedCount"`
	SkippedCount    int    `json:"skippedCount"`
	Hash            string `json:"hash,omitempty"`
	ForceFullSync   bool   `json:"forceFullSync,omitempty"`
}

type Collection[T any] struct {
	Data       []T    `json:"data"`
	Count      uint64 `json:"count"`
	Offset     uint64 `json:"offset"`
	Limit      uint64 `json:"limit"`
	TotalCount uint64 `json:"totalCount"`
}
