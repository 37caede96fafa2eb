package smugmug

import (
	"encoding/json"
	"time"
)

// NodeType classifies a node in the content tree.
type NodeType string

// Node types reported by the API. Unrecognized values decode as
// NodeTypeUnknown rather than failing the whole payload.
const (
	NodeTypeUnknown      NodeType = "Unknown"
	NodeTypeAlbum        NodeType = "Album"
	NodeTypeFolder       NodeType = "Folder"
	NodeTypePage         NodeType = "Page"
	NodeTypeSystemFolder NodeType = "System Folder"
	NodeTypeSystemPage   NodeType = "System Page"
)

// UnmarshalJSON implements json.Unmarshaler.
func (t *NodeType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch NodeType(raw) {
	case NodeTypeAlbum, NodeTypeFolder, NodeTypePage, NodeTypeSystemFolder, NodeTypeSystemPage:
		*t = NodeType(raw)
	default:
		*t = NodeTypeUnknown
	}

	return nil
}

// PrivacyLevel is the visibility of a node or album.
type PrivacyLevel string

// Privacy levels reported by the API. Unrecognized values decode as
// PrivacyUnknown.
const (
	PrivacyUnknown  PrivacyLevel = "Unknown"
	PrivacyPublic   PrivacyLevel = "Public"
	PrivacyUnlisted PrivacyLevel = "Unlisted"
	PrivacyPrivate  PrivacyLevel = "Private"
)

// UnmarshalJSON implements json.Unmarshaler.
func (p *PrivacyLevel) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch PrivacyLevel(raw) {
	case PrivacyPublic, PrivacyUnlisted, PrivacyPrivate:
		*p = PrivacyLevel(raw)
	default:
		*p = PrivacyUnknown
	}

	return nil
}

// SortMethod orders child-node listings.
type SortMethod string

// Sort methods accepted by the child-node endpoint.
const (
	SortMethodOrganizer    SortMethod = "Organizer"
	SortMethodSortIndex    SortMethod = "SortIndex"
	SortMethodName         SortMethod = "Name"
	SortMethodDateAdded    SortMethod = "DateAdded"
	SortMethodDateModified SortMethod = "DateModified"
)

// SortDirection orders listings ascending or descending.
type SortDirection string

// Sort directions accepted by the child-node endpoint.
const (
	SortDirectionAscending  SortDirection = "Ascending"
	SortDirectionDescending SortDirection = "Descending"
)

// NodeTypeFilter restricts a child-node listing to certain node types.
type NodeTypeFilter string

// Type filters accepted by the child-node endpoint.
const (
	NodeTypeFilterAny             NodeTypeFilter = "Any"
	NodeTypeFilterAlbum           NodeTypeFilter = "Album"
	NodeTypeFilterFolder          NodeTypeFilter = "Folder"
	NodeTypeFilterPage            NodeTypeFilter = "Page"
	NodeTypeFilterSystemAlbum     NodeTypeFilter = "System Album"
	NodeTypeFilterFolderAlbumPage NodeTypeFilter = "Folder Album Page"
)

// UserUris holds the endpoints hanging off a user record.
type UserUris struct {
	Node string `json:"Node,omitempty" yaml:"node,omitempty"`
}

// User represents a SmugMug account.
type User struct {
	URI       string   `json:"Uri"                 yaml:"uri"`
	Name      string   `json:"Name,omitempty"      yaml:"name,omitempty"`
	FirstName string   `json:"FirstName,omitempty" yaml:"first_name,omitempty"`
	LastName  string   `json:"LastName,omitempty"  yaml:"last_name,omitempty"`
	NickName  string   `json:"NickName,omitempty"  yaml:"nick_name,omitempty"`
	Plan      string   `json:"Plan,omitempty"      yaml:"plan,omitempty"`
	TimeZone  string   `json:"TimeZone,omitempty"  yaml:"time_zone,omitempty"`
	WebURI    string   `json:"WebUri,omitempty"    yaml:"web_uri,omitempty"`
	Uris      UserUris `json:"Uris,omitempty"      yaml:"uris,omitempty"`
}

// NodeUris holds the endpoints hanging off a node record.
type NodeUris struct {
	ChildNodes string `json:"ChildNodes,omitempty" yaml:"child_nodes,omitempty"`
	Album      string `json:"Album,omitempty"      yaml:"album,omitempty"`
}

// Node represents an entry in a user's content tree: a folder, an
// album, or a page.
type Node struct {
	URI             string       `json:"Uri"                       yaml:"uri"`
	Name            string       `json:"Name,omitempty"            yaml:"name,omitempty"`
	Description     string       `json:"Description,omitempty"     yaml:"description,omitempty"`
	PasswordHint    string       `json:"PasswordHint,omitempty"    yaml:"password_hint,omitempty"`
	URLName         string       `json:"UrlName,omitempty"         yaml:"url_name,omitempty"`
	WebURI          string       `json:"WebUri,omitempty"          yaml:"web_uri,omitempty"`
	Type            NodeType     `json:"Type,omitempty"            yaml:"type,omitempty"`
	Privacy         PrivacyLevel `json:"Privacy,omitempty"         yaml:"privacy,omitempty"`
	SmugSearchable  string       `json:"SmugSearchable,omitempty"  yaml:"smug_searchable,omitempty"`
	WorldSearchable string       `json:"WorldSearchable,omitempty" yaml:"world_searchable,omitempty"`
	HasChildren     bool         `json:"HasChildren,omitempty"     yaml:"has_children,omitempty"`
	IsRoot          bool         `json:"IsRoot,omitempty"          yaml:"is_root,omitempty"`
	DateAdded       *time.Time   `json:"DateAdded,omitempty"       yaml:"date_added,omitempty"`
	DateModified    *time.Time   `json:"DateModified,omitempty"    yaml:"date_modified,omitempty"`
	Uris            NodeUris     `json:"Uris,omitempty"            yaml:"uris,omitempty"`
}

// NodeID extracts the node id from the record's URI, i.e. the final
// path segment. Empty when the URI is absent.
func (n *Node) NodeID() string {
	return lastPathSegment(n.URI)
}

// AlbumUris holds the endpoints hanging off an album record.
type AlbumUris struct {
	AlbumImages string `json:"AlbumImages,omitempty" yaml:"album_images,omitempty"`
}

// Album represents an album and its image-collection settings.
type Album struct {
	URI               string       `json:"Uri"                         yaml:"uri"`
	AlbumKey          string       `json:"AlbumKey,omitempty"          yaml:"album_key,omitempty"`
	Name              string       `json:"Name,omitempty"              yaml:"name,omitempty"`
	Description       string       `json:"Description,omitempty"       yaml:"description,omitempty"`
	PasswordHint      string       `json:"PasswordHint,omitempty"      yaml:"password_hint,omitempty"`
	URLName           string       `json:"UrlName,omitempty"           yaml:"url_name,omitempty"`
	WebURI            string       `json:"WebUri,omitempty"            yaml:"web_uri,omitempty"`
	UploadKey         string       `json:"UploadKey,omitempty"         yaml:"upload_key,omitempty"`
	AllowDownloads    bool         `json:"AllowDownloads,omitempty"    yaml:"allow_downloads,omitempty"`
	ImageCount        int          `json:"ImageCount,omitempty"        yaml:"image_count,omitempty"`
	TotalSizes        uint64       `json:"TotalSizes,omitempty"        yaml:"total_sizes,omitempty"`
	OriginalSizes     uint64       `json:"OriginalSizes,omitempty"     yaml:"original_sizes,omitempty"`
	Privacy           PrivacyLevel `json:"Privacy,omitempty"           yaml:"privacy,omitempty"`
	Date              *time.Time   `json:"Date,omitempty"              yaml:"date,omitempty"`
	ImagesLastUpdated *time.Time   `json:"ImagesLastUpdated,omitempty" yaml:"images_last_updated,omitempty"`
	LastUpdated       *time.Time   `json:"LastUpdated,omitempty"       yaml:"last_updated,omitempty"`
	Uris              AlbumUris    `json:"Uris,omitempty"              yaml:"uris,omitempty"`
}

// Image represents a single image or video within an album.
type Image struct {
	URI              string     `json:"Uri"                        yaml:"uri"`
	Title            string     `json:"Title,omitempty"            yaml:"title,omitempty"`
	Caption          string     `json:"Caption,omitempty"          yaml:"caption,omitempty"`
	Altitude         float64    `json:"Altitude,omitempty"         yaml:"altitude,omitempty"`
	Latitude         string     `json:"Latitude,omitempty"         yaml:"latitude,omitempty"`
	Longitude        string     `json:"Longitude,omitempty"        yaml:"longitude,omitempty"`
	Format           string     `json:"Format,omitempty"           yaml:"format,omitempty"`
	FileName         string     `json:"FileName,omitempty"         yaml:"file_name,omitempty"`
	IsVideo          bool       `json:"IsVideo,omitempty"          yaml:"is_video,omitempty"`
	IsProcessing     bool       `json:"Processing,omitempty"       yaml:"is_processing,omitempty"`
	Hidden           bool       `json:"Hidden,omitempty"           yaml:"hidden,omitempty"`
	Watermarked      bool       `json:"Watermarked,omitempty"      yaml:"watermarked,omitempty"`
	DateTimeUploaded *time.Time `json:"DateTimeUploaded,omitempty" yaml:"date_time_uploaded,omitempty"`
	LastUpdated      *time.Time `json:"LastUpdated,omitempty"      yaml:"last_updated,omitempty"`
	ArchivedURI      string     `json:"ArchivedUri,omitempty"      yaml:"archived_uri,omitempty"`
	ArchivedMD5      string     `json:"ArchivedMD5,omitempty"      yaml:"archived_md5,omitempty"`
	ArchivedSize     uint64     `json:"ArchivedSize,omitempty"     yaml:"archived_size,omitempty"`
}

// CreateAlbumProps are the writable properties accepted when creating
// an album under a folder node.
type CreateAlbumProps struct {
	Name            string       `json:"Name"`
	URLName         string       `json:"UrlName"`
	Type            NodeType     `json:"Type"`
	Description     string       `json:"Description,omitempty"`
	PasswordHint    string       `json:"PasswordHint,omitempty"`
	Privacy         PrivacyLevel `json:"Privacy,omitempty"`
	AutoRename      bool         `json:"AutoRename,omitempty"`
	SecurityType    string       `json:"SecurityType,omitempty"`
	SortDirection   string       `json:"SortDirection,omitempty"`
	SortMethod      string       `json:"SortMethod,omitempty"`
	WorldSearchable bool         `json:"WorldSearchable,omitempty"`
}

func lastPathSegment(uri string) string {
	if uri == "" {
		return ""
	}

	for i := len(uri) - 1; i >= 0; i-- {
		if uri[i] == '/' {
			return uri[i+1:]
		}
	}

	return uri
}
