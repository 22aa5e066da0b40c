package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceiptHTML(t *testing.T) {
	doc, err := BuildReceipt(paidMonthlyFee(), testInstitute(), testStudent())
	require.NoError(t, err)

	html, err := RenderReceiptHTML(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<div class="watermark">PAID</div>`)
	assert.Contains(t, html, "Gurukul Public School")
	assert.Contains(t, html, "Aarav Sharma")
	assert.Contains(t, html, "RCPT-2026-000042")
	assert.Contains(t, html, "Tuition Fee")
	assert.Contains(t, html, `id="grand-total">1200.00<`)
	assert.Contains(t, html, "One Thousand Two Hundred Rupees Only")
	assert.Contains(t, html, PaymentModeCounter)
}

func TestRenderReceiptHTMLEscapesContent(t *testing.T) {
	doc, err := BuildReceipt(paidMonthlyFee(), testInstitute(), testStudent())
	require.NoError(t, err)
	doc.StudentName = `<script>alert("x")</script>`

	html, err := RenderReceiptHTML(doc)
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderReceiptHTMLSelfContained(t *testing.T) {
	doc, err := BuildReceipt(paidMonthlyFee(), testInstitute(), testStudent())
	require.NoError(t, err)

	html, err := RenderReceiptHTML(doc)
	require.NoError(t, err)

	// The artifact must not reference external stylesheets or scripts.
	assert.NotContains(t, html, "<link")
	assert.NotContains(t, html, "<script")
	assert.Contains(t, html, "<style>")
}

func TestRenderReportCardHTML(t *testing.T) {
	blueprint := reportBlueprint()
	result := reportResult()

	doc, err := BuildReportCard(blueprint, result, testInstitute(), testStudent())
	require.NoError(t, err)

	html, err := RenderReportCardHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "Half Yearly Examination")
	assert.Contains(t, html, "Mathematics")
	assert.Contains(t, html, "Aarav Sharma")
	assert.Contains(t, html, "76.50%")
}
