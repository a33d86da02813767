package service

import (
	"github.com/narasux/goarticle/pkg/model"
)

// RevisionInput 文章内容输入
type RevisionInput struct {
	Title string
	Body  string
	Note  string
}

// NewRevision 构造候选 Revision（尚未落库）
func NewRevision(input RevisionInput, userID uint64, revisionType model.RevisionType) *model.Revision {
	return &model.Revision{
		UserID:       userID,
		Title:        input.Title,
		Body:         input.Body,
		Note:         input.Note,
		RevisionType: revisionType,
	}
}

// ValidateRevision 校验 Revision，无副作用；预览与正式保存使用同一套规则
func ValidateRevision(rev *model.Revision) error {
	return validateStruct(rev)
}

// PreviewRevision 构造并校验预览用的 Revision，不会落库
func PreviewRevision(input RevisionInput, userID uint64) (*model.Revision, error) {
	rev := NewRevision(input, userID, model.RevisionTypePreview)
	if err := ValidateRevision(rev); err != nil {
		return rev, err
	}
	return rev, nil
}
