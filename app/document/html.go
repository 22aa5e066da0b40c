package document

import (
	"bytes"
	"html/template"
)

// The generated artifacts are self-contained HTML documents (inline CSS,
// fixed virtual viewport suited to A4). An external print engine converts
// them to PDF; nothing here depends on the engine.

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Fee Receipt {{.ReceiptNo}}</title>
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; padding: 24px; color: #222; width: 760px; }
  .sheet { position: relative; border: 1px solid #444; padding: 28px; overflow: hidden; }
  .watermark { position: absolute; top: 42%; left: 18%; transform: rotate(-30deg); font-size: 110px; font-weight: bold; color: rgba(34, 139, 34, 0.13); letter-spacing: 14px; z-index: 0; }
  .content { position: relative; z-index: 1; }
  .header { display: flex; align-items: center; border-bottom: 2px solid #444; padding-bottom: 14px; }
  .header img { height: 64px; margin-right: 18px; }
  .header h1 { margin: 0; font-size: 24px; }
  .header .sub { font-size: 12px; color: #555; margin-top: 3px; }
  .meta { display: grid; grid-template-columns: 1fr 1fr 1fr; gap: 6px 18px; margin: 16px 0; font-size: 13px; }
  .meta b { color: #444; }
  table.items { width: 100%; border-collapse: collapse; margin-top: 10px; font-size: 13px; }
  table.items th, table.items td { border: 1px solid #888; padding: 7px 10px; text-align: left; }
  table.items th { background: #f0f0f0; }
  table.items td.amt { text-align: right; }
  tr.total td { font-weight: bold; background: #fafafa; }
  .words { margin: 12px 0; font-size: 13px; font-style: italic; }
  .payment { font-size: 13px; margin: 4px 0; }
  .signature { margin-top: 48px; display: flex; justify-content: space-between; font-size: 13px; }
  .signature .line { border-top: 1px solid #444; padding-top: 4px; width: 180px; text-align: center; }
</style>
</head>
<body>
<div class="sheet">
  <div class="watermark">PAID</div>
  <div class="content">
    <div class="header">
      {{if .LogoURL}}<img src="{{.LogoURL}}" alt="logo">{{end}}
      <div>
        <h1>{{.InstituteName}}</h1>
        {{if .Affiliation}}<div class="sub">{{.Affiliation}}</div>{{end}}
        {{if .Address}}<div class="sub">{{.Address}}</div>{{end}}
        <div class="sub">{{if .Mobile}}Mob: {{.Mobile}}{{end}}{{if .Email}} | {{.Email}}{{end}}</div>
      </div>
    </div>
    <div class="meta">
      <div><b>Receipt No:</b> {{.ReceiptNo}}</div>
      <div><b>Date:</b> {{.Date}}</div>
      <div><b>Month:</b> {{.MonthYear}}</div>
      <div><b>Student:</b> {{.StudentName}}</div>
      <div><b>Class:</b> {{.ClassName}}</div>
      <div><b>Roll No:</b> {{.RollNo}}</div>
    </div>
    <table class="items">
      <tr><th>#</th><th>Particulars</th><th>Amount (Rs.)</th></tr>
      {{range $i, $item := .LineItems}}
      <tr><td>{{inc $i}}</td><td>{{$item.Name}}</td><td class="amt">{{printf "%.2f" $item.Amount}}</td></tr>
      {{end}}
      <tr class="total"><td colspan="2">Grand Total</td><td class="amt" id="grand-total">{{.GrandTotalLabel}}</td></tr>
    </table>
    <div class="words">Amount in words: {{.AmountInWords}}</div>
    <div class="payment"><b>Payment Mode:</b> {{.PaymentMode}}</div>
    <div class="payment"><b>Collected By:</b> {{.CollectedBy}}</div>
    {{if .PaymentID}}<div class="payment"><b>Ref:</b> {{.PaymentID}}</div>{{end}}
    <div class="signature">
      <div class="line">Parent / Guardian</div>
      <div class="line">Authorised Signatory</div>
    </div>
  </div>
</div>
</body>
</html>
`))

var reportCardTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Report Card - {{.StudentName}}</title>
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; padding: 24px; color: #222; width: 760px; }
  .sheet { border: 1px solid #444; padding: 28px; }
  .header { display: flex; align-items: center; border-bottom: 2px solid #444; padding-bottom: 14px; }
  .header img { height: 64px; margin-right: 18px; }
  .header h1 { margin: 0; font-size: 24px; }
  .header .sub { font-size: 12px; color: #555; margin-top: 3px; }
  .exam-name { text-align: center; font-size: 17px; font-weight: bold; margin: 14px 0 6px; text-transform: uppercase; }
  .meta { display: grid; grid-template-columns: 1fr 1fr; gap: 6px 18px; margin: 14px 0; font-size: 13px; }
  table.marks { width: 100%; border-collapse: collapse; font-size: 13px; }
  table.marks th, table.marks td { border: 1px solid #888; padding: 6px 9px; text-align: center; }
  table.marks th { background: #f0f0f0; }
  table.marks td.subj { text-align: left; }
  tr.total td { font-weight: bold; background: #fafafa; }
  .summary { margin-top: 14px; font-size: 14px; display: flex; gap: 36px; }
  .signature { margin-top: 48px; display: flex; justify-content: space-between; font-size: 13px; }
  .signature .line { border-top: 1px solid #444; padding-top: 4px; width: 180px; text-align: center; }
</style>
</head>
<body>
<div class="sheet">
  <div class="header">
    {{if .LogoURL}}<img src="{{.LogoURL}}" alt="logo">{{end}}
    <div>
      <h1>{{.InstituteName}}</h1>
      {{if .Affiliation}}<div class="sub">{{.Affiliation}}</div>{{end}}
      {{if .Address}}<div class="sub">{{.Address}}</div>{{end}}
    </div>
  </div>
  <div class="exam-name">{{.ExamName}}</div>
  <div class="meta">
    <div><b>Student:</b> {{.StudentName}}</div>
    <div><b>Class:</b> {{.ClassName}}</div>
    <div><b>Roll No:</b> {{.RollNo}}</div>
    <div><b>Date of Birth:</b> {{.DOB}}</div>
    <div><b>Father's Name:</b> {{.FatherName}}</div>
    <div><b>Mother's Name:</b> {{.MotherName}}</div>
  </div>
  <table class="marks">
    <tr><th>Subject</th><th>Max Theory</th><th>Max Practical</th><th>Theory</th><th>Practical</th><th>Obtained</th><th>Grade</th><th>Highest</th></tr>
    {{range .Rows}}
    <tr>
      <td class="subj">{{.Subject}}</td>
      <td>{{printf "%.0f" .MaxTheory}}</td>
      <td>{{printf "%.0f" .MaxPractical}}</td>
      <td>{{.Theory}}</td>
      <td>{{.Practical}}</td>
      <td>{{printf "%.2f" .Obtained}}</td>
      <td>{{.Grade}}</td>
      <td>{{.Highest}}</td>
    </tr>
    {{end}}
    <tr class="total"><td class="subj">Total</td><td colspan="4">Out of {{printf "%.0f" .MaxTotal}}</td><td>{{.TotalLabel}}</td><td colspan="2">{{.Grade}}</td></tr>
  </table>
  <div class="summary">
    <div><b>Percentage:</b> {{.PercentageLabel}}</div>
    <div><b>Overall Grade:</b> {{.Grade}}</div>
  </div>
  <div class="signature">
    <div class="line">Class Teacher</div>
    <div class="line">Principal</div>
  </div>
</div>
</body>
</html>
`))

// RenderReceiptHTML produces the printable receipt artifact for a built
// document. Template execution over the fixed model cannot fail at runtime;
// an error here is a programming bug surfaced to the caller.
func RenderReceiptHTML(doc *ReceiptDocument) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderReportCardHTML produces the printable report card artifact.
func RenderReportCardHTML(doc *ReportCardDocument) (string, error) {
	var buf bytes.Buffer
	if err := reportCardTmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
