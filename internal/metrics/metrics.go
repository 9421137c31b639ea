package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubdocs_documents_created_total",
		Help: "Documents created.",
	})

	SignatureToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubdocs_signature_toggles_total",
		Help: "Signatory sign/unsign toggles by direction.",
	}, []string{"direction"})

	ApprovalDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubdocs_approval_decisions_total",
		Help: "Admin approval decisions by outcome.",
	}, []string{"outcome"})

	UploadsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clubdocs_uploads_accepted_total",
		Help: "Uploads stored in the object store.",
	})

	UploadsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubdocs_uploads_rejected_total",
		Help: "Uploads rejected before any store call, by reason.",
	}, []string{"reason"})
)
