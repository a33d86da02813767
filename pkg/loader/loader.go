package loader

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/TencentBlueKing/gopkg/collection/set"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/narasux/goarticle/pkg/model"
	"github.com/narasux/goarticle/pkg/service"
)

// 文章元数据文件名
const metadataFileName = "articles.json"

// ErrInvalidArticleID 文章 ID 只能是 articles 目录下的文件名
var ErrInvalidArticleID = errors.New("invalid article id")

// ArticleMeta 文章元数据，正文存放于 articles/<ID>.md
type ArticleMeta struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Tags        string `json:"tags"`
	Note        string `json:"note"`
	PublishType string `json:"publishType"`
}

// Summary 导入结果
type Summary struct {
	Articles []*model.Article
	Tags     []string
}

// ArticleLoader 从目录中批量导入文章
//
// 每篇文章都通过 ArticleBuilder 保存，因此同样会产生 Revision 并经过校验
type ArticleLoader struct {
	db      *gorm.DB
	baseDir string
	metas   []ArticleMeta
	summary Summary
}

// New ...
func New(db *gorm.DB, baseDir string) *ArticleLoader {
	return &ArticleLoader{db: db, baseDir: baseDir}
}

// Exec 导入文章到指定用户名下
func (l *ArticleLoader) Exec(ctx context.Context, user *model.User) (*Summary, error) {
	if err := l.loadMetadata(); err != nil {
		return nil, err
	}
	if err := l.buildArticles(ctx, user); err != nil {
		return nil, err
	}
	l.collectTags()
	return &l.summary, nil
}

// 加载文章元数据
func (l *ArticleLoader) loadMetadata() error {
	content, err := os.ReadFile(filepath.Join(l.baseDir, metadataFileName))
	if err != nil {
		return err
	}
	if err = json.Unmarshal(content, &l.metas); err != nil {
		return err
	}
	// 导入前统一检查，避免部分文章已导入后才失败
	for _, meta := range l.metas {
		if !isValidArticleID(meta.ID) {
			return errors.Wrapf(ErrInvalidArticleID, "%q", meta.ID)
		}
	}
	return nil
}

// ID 不能为空，也不能包含路径分隔符（防止读取 articles 目录以外的文件）
func isValidArticleID(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, `/\`)
}

// 读取正文并逐篇保存，任意一篇失败即中止
func (l *ArticleLoader) buildArticles(ctx context.Context, user *model.User) error {
	for _, meta := range l.metas {
		body, err := os.ReadFile(filepath.Join(l.baseDir, "articles", meta.ID+".md"))
		if err != nil {
			return err
		}

		article := &model.Article{}
		err = service.NewArticleBuilder(l.db, article).Build(ctx, service.ArticleParams{
			Title:       meta.Title,
			TagsText:    meta.Tags,
			Body:        string(body),
			Note:        meta.Note,
			PublishType: meta.PublishType,
			UserID:      user.ID,
		})
		if err != nil {
			return errors.Wrapf(err, "import article %s", meta.ID)
		}
		l.summary.Articles = append(l.summary.Articles, article)
	}
	return nil
}

// 汇总导入文章的标签
func (l *ArticleLoader) collectTags() {
	tags := set.NewStringSet()
	for _, article := range l.summary.Articles {
		tags.Append(article.Tags...)
	}
	l.summary.Tags = tags.ToSlice()
}
