package model

import (
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// PublishState 文章发布状态
type PublishState string

const (
	// PublishStateDraft 草稿，仅作者可见
	PublishStateDraft PublishState = "draft"
	// PublishStatePublished 已发布，所有人可见
	PublishStatePublished PublishState = "published"
)

// ErrInvalidPublishState ...
var ErrInvalidPublishState = errors.New("invalid publish state")

// ParsePublishState 解析发布类型，为空时视为草稿
func ParsePublishState(s string) (PublishState, error) {
	switch PublishState(s) {
	case "", PublishStateDraft:
		return PublishStateDraft, nil
	case PublishStatePublished:
		return PublishStatePublished, nil
	}
	return "", errors.Wrapf(ErrInvalidPublishState, "%q", s)
}

// Article 文章
//
// Title / Body / Tags / Note 为最新一次 Revision 的冗余，只能由 ArticleBuilder 修改；
// LikeCount / ViewCount 是计数缓存，只能通过重新统计或原子自增修改
type Article struct {
	BaseModel
	ID           uint64                      `json:"id" gorm:"primaryKey"`
	UserID       uint64                      `json:"userID" gorm:"not null;index"`
	User         *User                       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title        string                      `json:"title" gorm:"type:varchar(255);not null;default:''"`
	Body         string                      `json:"body" gorm:"type:text"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	Note         string                      `json:"note" gorm:"type:varchar(255);not null;default:''"`
	PublishState PublishState                `json:"publishState" gorm:"type:varchar(16);not null;default:'draft';index"`
	LikeCount    int64                       `json:"likeCount" gorm:"not null;default:0"`
	ViewCount    int64                       `json:"viewCount" gorm:"not null;default:0"`
}

// IsPersisted 文章是否已经落库
func (a *Article) IsPersisted() bool {
	return a.ID != 0
}

// IsPublished ...
func (a *Article) IsPublished() bool {
	return a.PublishState == PublishStatePublished
}

// IsOwnedBy 判断文章是否属于指定用户
func (a *Article) IsOwnedBy(userID uint64) bool {
	return userID != 0 && a.UserID == userID
}

// ApplyRevision 将 Revision 的内容同步到文章的冗余字段上
func (a *Article) ApplyRevision(rev *Revision, tags []string, state PublishState) {
	a.Title = rev.Title
	a.Body = rev.Body
	a.Note = rev.Note
	a.Tags = tags
	a.PublishState = state
}

// Visibility 访问文章时的可见性判定结果
type Visibility int

const (
	// VisibilityAllow 可以正常查看
	VisibilityAllow Visibility = iota
	// VisibilityRedirectToOwnerView 作者访问未发布的文章，需要跳转至编辑页
	VisibilityRedirectToOwnerView
	// VisibilityDeny 无权查看
	VisibilityDeny
)

// String ...
func (v Visibility) String() string {
	switch v {
	case VisibilityAllow:
		return "allow"
	case VisibilityRedirectToOwnerView:
		return "redirectToOwnerView"
	default:
		return "deny"
	}
}

// DecideVisibility 根据发布状态与归属判定可见性，requesterID 为 0 表示匿名访问
func DecideVisibility(state PublishState, ownerID, requesterID uint64) Visibility {
	if state == PublishStatePublished {
		return VisibilityAllow
	}
	if requesterID != 0 && ownerID == requesterID {
		return VisibilityRedirectToOwnerView
	}
	return VisibilityDeny
}

// VisibilityFor 文章对指定访问者的可见性
func (a *Article) VisibilityFor(requesterID uint64) Visibility {
	return DecideVisibility(a.PublishState, a.UserID, requesterID)
}
