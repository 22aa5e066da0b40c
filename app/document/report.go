package document

import (
	"errors"
	"fmt"

	"github.com/apra1107-crypto/erp-sub002/app/grading"
	"github.com/apra1107-crypto/erp-sub002/app/models"
)

// ReportRow is one subject line of a report card.
type ReportRow struct {
	Subject      string
	MaxTheory    float64
	MaxPractical float64
	Theory       string
	Practical    string
	Obtained     float64
	PassingMarks float64
	Grade        string
	Highest      string
}

// ReportCardDocument is the render-agnostic model of a report card.
type ReportCardDocument struct {
	ExamName    string
	StudentName string
	ClassName   string
	RollNo      string
	FatherName  string
	MotherName  string
	DOB         string
	PhotoURL    string

	Rows       []ReportRow
	Total      float64
	MaxTotal   float64
	Percentage float64
	Grade      string

	InstituteName string
	LogoURL       string
	Affiliation   string
	Address       string
	Mobile        string
	Email         string
}

// TotalLabel formats the obtained total for display.
func (d *ReportCardDocument) TotalLabel() string {
	return fmt.Sprintf("%.2f", d.Total)
}

// PercentageLabel formats the persisted percentage for display.
func (d *ReportCardDocument) PercentageLabel() string {
	return fmt.Sprintf("%.2f%%", d.Percentage)
}

// BuildReportCard assembles the report card from a blueprint and the
// student's saved result. Subject rows follow blueprint order; marks rows
// with no blueprint subject are ignored, subjects with no marks row render
// blank. The overall stats come from the persisted calculated_stats, never
// recomputed here. Grades missing from the table (rule gaps) render as "-".
func BuildReportCard(blueprint *models.ExamBlueprint, result *models.StudentResult, institute *models.Institute, student *models.Student) (*ReportCardDocument, error) {
	if blueprint == nil || result == nil {
		return nil, errors.New("blueprint and result are required")
	}

	marksBySubject := make(map[string]models.MarksEntry, len(result.Marks))
	for _, entry := range result.Marks {
		marksBySubject[entry.Subject] = entry
	}

	doc := &ReportCardDocument{
		ExamName:   blueprint.Name,
		Total:      result.Stats.Total,
		MaxTotal:   blueprint.MaxTotal(),
		Percentage: result.Stats.Percentage,
		Grade:      placeholder(result.Stats.Grade),
	}

	for _, subject := range blueprint.Subjects {
		row := ReportRow{
			Subject:      subject.Name,
			MaxTheory:    subject.MaxTheory,
			MaxPractical: subject.MaxPractical,
			PassingMarks: subject.PassingMarks,
			Grade:        "-",
		}
		if entry, ok := marksBySubject[subject.Name]; ok {
			row.Theory = entry.Theory.String()
			row.Practical = entry.Practical.String()
			row.Obtained = grading.SubjectTotal(entry)
			row.Grade = placeholder(entry.Grade)
		}
		if highest, ok := blueprint.Stats[subject.Name]; ok {
			row.Highest = highest
		}
		doc.Rows = append(doc.Rows, row)
	}

	if student != nil {
		doc.StudentName = student.Name
		doc.ClassName = student.ClassLabel()
		doc.RollNo = student.RollNo
		doc.FatherName = student.FatherName
		doc.MotherName = student.MotherName
		doc.PhotoURL = student.PhotoURL
		if student.DOB != nil {
			doc.DOB = student.DOB.Format(receiptDateLayout)
		}
	}
	if institute != nil {
		doc.InstituteName = institute.Name
		doc.LogoURL = institute.LogoURL
		doc.Affiliation = institute.Affiliation
		doc.Address = institute.FullAddress()
		doc.Mobile = institute.Mobile
		doc.Email = institute.Email
	}

	return doc, nil
}

func placeholder(grade string) string {
	if grade == "" {
		return "-"
	}
	return grade
}
