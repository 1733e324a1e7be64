// Package metrics 定義服務自訂的 Prometheus 指標，註冊在預設 registry。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "project_admin"

// LoginAttemptsTotal 依結果計算登入次數
// result: success, invalid_credentials, rate_limited, error
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AssignmentReplacementsTotal 計算指派整批取代次數
// result: ok, not_found, invalid_reference, error
var AssignmentReplacementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignment_replacements_total",
		Help:      "Total number of assignment replace operations, by result.",
	},
	[]string{"result"},
)

// AssignmentEdges 每次成功取代後的指派數分佈
var AssignmentEdges = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "assignment_edges",
		Help:      "Number of users assigned per replace operation.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	},
)

// AuthorizationDeniedTotal 計算被拒絕的請求
// reason: unauthenticated, forbidden
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests denied by the authorization policy.",
	},
	[]string{"action", "reason"},
)
