package coder

import (
	"time"
)

// User represents a user of the Coder deployment.
type User struct {
	ID               string    `json:"id"                 yaml:"id"`
	Name             string    `json:"name"               yaml:"name"`
	Username         string    `json:"username"           yaml:"username"`
	Email            string    `json:"email"              yaml:"email"`
	DotfilesGitURI   string    `json:"dotfiles_git_uri"   yaml:"dotfiles_git_uri"`
	Roles            []string  `json:"roles"              yaml:"roles"`
	AvatarHash       string    `json:"avatar_hash"        yaml:"avatar_hash"`
	KeyRegeneratedAt time.Time `json:"key_regenerated_at" yaml:"key_regenerated_at"`
	CreatedAt        time.Time `json:"created_at"         yaml:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"         yaml:"updated_at"`
}

// Organization represents an organization.
type Organization struct {
	ID                  string      `json:"id"                    yaml:"id"`
	Name                string      `json:"name"                  yaml:"name"`
	Description         string      `json:"description"           yaml:"description"`
	Default             bool        `json:"default"               yaml:"default"`
	Members             []OrgMember `json:"members"               yaml:"members"`
	EnvironmentCount    int64       `json:"environment_count"     yaml:"environment_count"`
	ResourceNamespace   string      `json:"resource_namespace"    yaml:"resource_namespace"`
	AutoOffThreshold    int64       `json:"auto_off_threshold"    yaml:"auto_off_threshold"`
	CPUProvisioningRate int64       `json:"cpu_provisioning_rate" yaml:"cpu_provisioning_rate"`
	CreatedAt           time.Time   `json:"created_at"            yaml:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"            yaml:"updated_at"`
}

// OrgMember is a user together with their membership in an organization. The
// user fields are flattened into the member document.
type OrgMember struct {
	User `yaml:",inline"`

	OrganizationRoles     []OrgRole `json:"organization_roles"      yaml:"organization_roles"`
	HasActiveEnvironments bool      `json:"has_active_environments" yaml:"has_active_environments"`
	JoinedAt              time.Time `json:"joined_at"               yaml:"joined_at"`
	RolesUpdatedAt        time.Time `json:"roles_updated_at"        yaml:"roles_updated_at"`
}

// OrgRole is a role a member holds within an organization.
type OrgRole string

// Organization roles.
const (
	OrgRoleAdmin           OrgRole = "organization-admin"
	OrgRoleManager         OrgRole = "organization-manager"
	OrgRoleRegistryManager OrgRole = "registry-manager"
	OrgRoleMember          OrgRole = "organization-member"
)

// Environment represents a development environment.
type Environment struct {
	ID               string           `json:"id"                 yaml:"id"`
	Name             string           `json:"name"               yaml:"name"`
	Username         string           `json:"username"           yaml:"username"`
	ImageID          string           `json:"image_id"           yaml:"image_id"`
	ImageTag         string           `json:"image_tag"          yaml:"image_tag"`
	ImageDigest      string           `json:"image_digest"       yaml:"image_digest"`
	OrganizationID   string           `json:"organization_id"    yaml:"organization_id"`
	UserID           string           `json:"user_id"            yaml:"user_id"`
	LastBuiltAt      time.Time        `json:"last_built_at"      yaml:"last_built_at"`
	CPUCores         float64          `json:"cpu_cores"          yaml:"cpu_cores"`
	MemoryGB         int64            `json:"memory_gb"          yaml:"memory_gb"`
	DiskGB           int64            `json:"disk_gb"            yaml:"disk_gb"`
	GPUs             int64            `json:"gpus"               yaml:"gpus"`
	LatestStat       EnvironmentStat  `json:"latest_stat"        yaml:"latest_stat"`
	Updating         bool             `json:"updating"           yaml:"updating"`
	RebuildMessages  []RebuildMessage `json:"rebuild_messages"   yaml:"rebuild_messages"`
	LastOpenedAt     time.Time        `json:"last_opened_at"     yaml:"last_opened_at"`
	LastConnectionAt time.Time        `json:"last_connection_at" yaml:"last_connection_at"`
	AutoOffThreshold Duration         `json:"auto_off_threshold" yaml:"auto_off_threshold"`
	ServiceIDs       []string         `json:"service_ids"        yaml:"service_ids"`
	CreatedAt        time.Time        `json:"created_at"         yaml:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"         yaml:"updated_at"`
}

// RebuildMessage describes why an environment should be rebuilt.
type RebuildMessage struct {
	Text     string `json:"text"     yaml:"text"`
	Required bool   `json:"required" yaml:"required"`
}

// EnvironmentStat is a point-in-time resource snapshot of an environment.
type EnvironmentStat struct {
	Time            time.Time         `json:"time"             yaml:"time"`
	LastOnline      string            `json:"last_online"      yaml:"last_online"`
	ContainerStatus EnvironmentStatus `json:"container_status" yaml:"container_status"`
	StatError       string            `json:"stat_error"       yaml:"stat_error"`
	CPUUsage        float32           `json:"cpu_usage"        yaml:"cpu_usage"`
	MemoryTotal     int64             `json:"memory_total"     yaml:"memory_total"`
	MemoryUsage     float32           `json:"memory_usage"     yaml:"memory_usage"`
	DiskTotal       int64             `json:"disk_total"       yaml:"disk_total"`
	DiskUsed        int64             `json:"disk_used"        yaml:"disk_used"`
	ServiceStat     []ServiceStat     `json:"service_stat"     yaml:"service_stat"`
}

// ServiceStat is the status of one service attached to an environment.
type ServiceStat struct {
	Name   string            `json:"name"   yaml:"name"`
	Status EnvironmentStatus `json:"status" yaml:"status"`
	Reason string            `json:"reason" yaml:"reason"`
}

// EnvironmentStatus is the container state of an environment or service.
type EnvironmentStatus string

// Environment states.
const (
	EnvironmentCreating EnvironmentStatus = "CREATING"
	EnvironmentOff      EnvironmentStatus = "OFF"
	EnvironmentOn       EnvironmentStatus = "ON"
	EnvironmentFailed   EnvironmentStatus = "FAILED"
	EnvironmentUnknown  EnvironmentStatus = "UNKNOWN"
)

// Image represents a container image registered with an organization.
type Image struct {
	ID              string        `json:"id"                     yaml:"id"`
	OrganizationID  string        `json:"organization_id"        yaml:"organization_id"`
	Repository      string        `json:"repository"             yaml:"repository"`
	Description     string        `json:"description"            yaml:"description"`
	URL             string        `json:"url"                    yaml:"url"`
	DefaultCPUCores int64         `json:"default_cpu_cores"      yaml:"default_cpu_cores"`
	DefaultMemoryGB int64         `json:"default_memory_gb"      yaml:"default_memory_gb"`
	DefaultDiskGB   int64         `json:"default_disk_gb"        yaml:"default_disk_gb"`
	Deprecated      bool          `json:"deprecated"             yaml:"deprecated"`
	Environments    []Environment `json:"environments,omitempty" yaml:"environments,omitempty"`
	Registry        Registry      `json:"registry"               yaml:"registry"`
	DefaultTag      ImageTag      `json:"default_tag"            yaml:"default_tag"`
	CreatedAt       time.Time     `json:"created_at"             yaml:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"             yaml:"updated_at"`
}

// Registry represents a container registry.
type Registry struct {
	ID             string    `json:"id"              yaml:"id"`
	OrganizationID string    `json:"organization_id" yaml:"organization_id"`
	FriendlyName   string    `json:"friendly_name"   yaml:"friendly_name"`
	Registry       string    `json:"registry"        yaml:"registry"`
	CreatedAt      time.Time `json:"created_at"      yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"      yaml:"updated_at"`
}

// ImageTag represents one tag of an image.
type ImageTag struct {
	ImageID           string        `json:"image_id"               yaml:"image_id"`
	Tag               string        `json:"tag"                    yaml:"tag"`
	LatestHash        string        `json:"latest_hash"            yaml:"latest_hash"`
	HashLastUpdatedAt time.Time     `json:"hash_last_updated_at"   yaml:"hash_last_updated_at"`
	Environments      []Environment `json:"environments,omitempty" yaml:"environments,omitempty"`
	OSRelease         *OSRelease    `json:"os_release,omitempty"   yaml:"os_release,omitempty"`
	CreatedAt         time.Time     `json:"created_at"             yaml:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"             yaml:"updated_at"`
}

// OSRelease identifies the operating system of an image tag.
type OSRelease struct {
	ID         string `json:"id"          yaml:"id"`
	PrettyName string `json:"pretty_name" yaml:"pretty_name"`
	HomeURL    string `json:"home_url"    yaml:"home_url"`
}

// Service is a sidecar service defined in an organization.
type Service struct {
	ID           string               `json:"id"            yaml:"id"`
	Name         string               `json:"name"          yaml:"name"`
	Description  string               `json:"description"   yaml:"description"`
	ImageID      string               `json:"image_id"      yaml:"image_id"`
	ImageTag     string               `json:"image_tag"     yaml:"image_tag"`
	Command      string               `json:"command"       yaml:"command"`
	Args         []string             `json:"args"          yaml:"args"`
	Privileged   bool                 `json:"privileged"    yaml:"privileged"`
	VolumeMounts []ServiceVolumeMount `json:"volume_mounts" yaml:"volume_mounts"`
	EnvVars      []ServiceEnvVar      `json:"env_vars"      yaml:"env_vars"`
}

// ServiceVolumeMount is a volume mounted into a service.
type ServiceVolumeMount struct {
	Name      string `json:"name"       yaml:"name"`
	ServiceID string `json:"service_id" yaml:"service_id"`
	Path      string `json:"path"       yaml:"path"`
	SizeGB    int32  `json:"size_gb"    yaml:"size_gb"`
}

// ServiceEnvVar is an environment variable set on a service.
type ServiceEnvVar struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}
