package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/idrissziadi/stage-sub004/internal/model"
	"github.com/idrissziadi/stage-sub004/internal/repository"
	"github.com/idrissziadi/stage-sub004/pkg/apperr"
)

// ── Erreurs d'export ──

var (
	ErrExportAucuneInscription = apperr.Validation("Export", "inscriptions", "aucune inscription pour cette offre")
	ErrExportGeneration        = apperr.Validation("Export", "fichier", "échec de génération du fichier")
	ErrExportDatesManquantes   = apperr.Validation("Export", "dates", "l'offre n'a pas de bornes de dates")
)

// ExportService exports des offres : liste d'émargement Excel (.xlsx)
// et flux calendrier (.ics) de la période de formation.
// Les contenus sont rendus dans un bytes.Buffer ; le handler pose les
// en-têtes HTTP et écrit la réponse.
type ExportService interface {
	ExportInscriptions(ctx context.Context, idOffre string) (*bytes.Buffer, string, error)
	ExportCalendrier(ctx context.Context, idOffre string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crée l'ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportInscriptions génère la liste d'émargement d'une offre : une ligne
// par inscription, triée par date d'inscription.
func (s *exportService) ExportInscriptions(ctx context.Context, idOffre string) (*bytes.Buffer, string, error) {
	offre, err := s.repo.Offre.GetByID(ctx, idOffre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrOffreIntrouvable
		}
		s.logger.Error("lecture de l'offre", zap.Error(err))
		return nil, "", err
	}

	inscriptions, err := s.repo.Inscription.ListByOffre(ctx, idOffre)
	if err != nil {
		s.logger.Error("lecture des inscriptions", zap.Error(err))
		return nil, "", err
	}
	if len(inscriptions) == 0 {
		return nil, "", ErrExportAucuneInscription
	}

	designation := DesignationOffre(offre.Specialite, offre.Diplome, "fr")
	if designation == "" {
		designation = offre.ID
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Inscriptions"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "C", 22)
	f.SetColWidth(sheetName, "D", "D", 28)
	f.SetColWidth(sheetName, "E", "F", 16)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// ligne de titre
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — Liste des inscriptions", designation))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// en-têtes
	row := 2
	entetes := []string{"N°", "Nom", "Prénom", "Email", "Date d'inscription", "Statut"}
	for i, entete := range entetes {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, row), entete)
		f.SetCellStyle(sheetName, cell(col, row), cell(col, row), headerStyle)
	}

	// lignes de données
	row = 3
	for i := range inscriptions {
		insc := &inscriptions[i]

		nom, prenom, email := "-", "-", "-"
		if insc.Stagiaire != nil {
			nom = insc.Stagiaire.NomFr
			prenom = insc.Stagiaire.PrenomFr
			if insc.Stagiaire.Email != nil {
				email = *insc.Stagiaire.Email
			}
		}

		f.SetCellValue(sheetName, cell("A", row), i+1)
		f.SetCellValue(sheetName, cell("B", row), nom)
		f.SetCellValue(sheetName, cell("C", row), prenom)
		f.SetCellValue(sheetName, cell("D", row), email)
		f.SetCellValue(sheetName, cell("E", row), FormatDate(insc.DateInscription))
		f.SetCellValue(sheetName, cell("F", row), insc.Statut)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("écriture du fichier Excel", zap.Error(err))
		return nil, "", ErrExportGeneration
	}

	filename := fmt.Sprintf("inscriptions_%s.xlsx", offre.ID)
	return buf, filename, nil
}

// ExportCalendrier publie la période de formation d'une offre sous forme
// d'un calendrier iCalendar à un événement, importable par les agendas
// des stagiaires. Exige les deux bornes de dates.
func (s *exportService) ExportCalendrier(ctx context.Context, idOffre string) (*bytes.Buffer, string, error) {
	offre, err := s.repo.Offre.GetByID(ctx, idOffre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrOffreIntrouvable
		}
		return nil, "", err
	}
	if offre.DateDebut == nil || offre.DateFin == nil {
		return nil, "", ErrExportDatesManquantes
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//gestion-formation//offres//FR")

	event := cal.AddEvent(fmt.Sprintf("offre-%s@gestion-formation", offre.ID))
	event.SetCreatedTime(time.Now())
	event.SetDtStampTime(time.Now())
	event.SetAllDayStartAt(*offre.DateDebut)
	// DTEND exclusif en journée entière
	event.SetAllDayEndAt(offre.DateFin.AddDate(0, 0, 1))
	event.SetSummary(s.resumeOffre(offre))
	if offre.EtabFormation != nil {
		event.SetLocation(offre.EtabFormation.NomFr)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("offre_%s.ics", offre.ID)
	return buf, filename, nil
}

func (s *exportService) resumeOffre(offre *model.Offre) string {
	designation := DesignationOffre(offre.Specialite, offre.Diplome, "fr")
	if designation == "" {
		return "Formation"
	}
	if offre.Mode != nil {
		return fmt.Sprintf("%s (%s)", designation, offre.Mode.DesignationFr)
	}
	return designation
}

// ── Aides ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
