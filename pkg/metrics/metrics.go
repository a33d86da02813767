package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "goarticle"

// 文章保存结果
const (
	BuildResultOK      = "ok"
	BuildResultInvalid = "invalid"
	BuildResultError   = "error"
)

var (
	// ArticleBuildTotal 文章保存次数（按结果区分）
	ArticleBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "article_builds_total",
		Help:      "Number of article builds partitioned by result.",
	}, []string{"result"})

	// LikeActionTotal 点赞 / 取消点赞次数
	LikeActionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "like_actions_total",
		Help:      "Number of like and unlike actions partitioned by action and result.",
	}, []string{"action", "result"})

	// ArticleViewTotal 文章阅读次数，counted 表示是否计入阅读数（会话内去重）
	ArticleViewTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "article_views_total",
		Help:      "Number of published article views partitioned by whether the view was counted.",
	}, []string{"counted"})
)
