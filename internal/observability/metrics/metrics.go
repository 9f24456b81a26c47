package metrics

import "github.com/prometheus/client_golang/prometheus"

// BotMetrics exposes counters/histograms for the WhatsApp bot. All methods
// are nil-safe so wiring metrics stays optional in tests and local runs.
type BotMetrics struct {
	messagesTotal      *prometheus.CounterVec
	classifiedTotal    *prometheus.CounterVec
	leadsCreatedTotal  *prometheus.CounterVec
	leadsForwarded     *prometheus.CounterVec
	webhookLatency     *prometheus.HistogramVec
	outboundSendsTotal *prometheus.CounterVec
}

func NewBotMetrics(reg prometheus.Registerer) *BotMetrics {
	m := &BotMetrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbot",
			Subsystem: "messaging",
			Name:      "inbound_messages_total",
			Help:      "Total inbound WhatsApp messages",
		}, []string{"status"}),
		classifiedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbot",
			Subsystem: "intent",
			Name:      "classified_total",
			Help:      "Messages classified, by cascade stage and intent",
		}, []string{"source", "intent"}),
		leadsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbot",
			Subsystem: "franchise",
			Name:      "leads_created_total",
			Help:      "Franchise leads logged, by enquiry type",
		}, []string{"enquiry_type"}),
		leadsForwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbot",
			Subsystem: "franchise",
			Name:      "leads_forwarded_total",
			Help:      "Lead forwarding attempts, by outcome",
		}, []string{"outcome"}),
		webhookLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salonbot",
			Subsystem: "messaging",
			Name:      "webhook_latency_seconds",
			Help:      "Latency of WhatsApp webhook processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		outboundSendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbot",
			Subsystem: "messaging",
			Name:      "outbound_total",
			Help:      "Total outbound WhatsApp sends",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.messagesTotal, m.classifiedTotal, m.leadsCreatedTotal,
		m.leadsForwarded, m.webhookLatency, m.outboundSendsTotal)
	return m
}

func (m *BotMetrics) ObserveInbound(status string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(status).Inc()
}

func (m *BotMetrics) ObserveClassification(source, intent string) {
	if m == nil {
		return
	}
	m.classifiedTotal.WithLabelValues(source, intent).Inc()
}

func (m *BotMetrics) LeadCreated(enquiryType string) {
	if m == nil {
		return
	}
	m.leadsCreatedTotal.WithLabelValues(enquiryType).Inc()
}

func (m *BotMetrics) LeadForwarded(ok bool) {
	if m == nil {
		return
	}
	outcome := "failed"
	if ok {
		outcome = "forwarded"
	}
	m.leadsForwarded.WithLabelValues(outcome).Inc()
}

func (m *BotMetrics) ObserveWebhookLatency(status string, seconds float64) {
	if m == nil {
		return
	}
	m.webhookLatency.WithLabelValues(status).Observe(seconds)
}

func (m *BotMetrics) ObserveOutbound(status string) {
	if m == nil {
		return
	}
	m.outboundSendsTotal.WithLabelValues(status).Inc()
}
