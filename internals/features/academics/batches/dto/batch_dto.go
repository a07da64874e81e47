// file: internals/features/academics/batches/dto/batch_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	"gurukul_backend/internals/features/academics/batches/model"
)

type BatchCreateRequest struct {
	BatchName string   `json:"batch_name" validate:"required,max=50"`
	StartYear int16    `json:"start_year" validate:"required,min=2000,max=2100"`
	EndYear   int16    `json:"end_year" validate:"required,min=2000,max=2100"`
	Type      *string  `json:"type" validate:"omitempty,max=50"`
	Subjects  []string `json:"subjects"`
}

func (r *BatchCreateRequest) Normalize() {
	r.BatchName = strings.TrimSpace(r.BatchName)
	for i := range r.Subjects {
		r.Subjects[i] = strings.TrimSpace(r.Subjects[i])
	}
}

func (r *BatchCreateRequest) ToModel() model.BatchModel {
	return model.BatchModel{
		BatchName: r.BatchName,
		StartYear: r.StartYear,
		EndYear:   r.EndYear,
		Type:      r.Type,
		Subjects:  pq.StringArray(r.Subjects),
	}
}

type BatchUpdateRequest struct {
	BatchName *string  `json:"batch_name" validate:"omitempty,max=50"`
	StartYear *int16   `json:"start_year" validate:"omitempty,min=2000,max=2100"`
	EndYear   *int16   `json:"end_year" validate:"omitempty,min=2000,max=2100"`
	Type      *string  `json:"type" validate:"omitempty,max=50"`
	Subjects  []string `json:"subjects"`
}

type BatchResponse struct {
	BatchID   int      `json:"batch_id"`
	BatchName string   `json:"batch_name"`
	StartYear int16    `json:"start_year"`
	EndYear   int16    `json:"end_year"`
	Type      *string  `json:"type"`
	Subjects  []string `json:"subjects"`
	CreatedAt string   `json:"created_at"`
}

func ToBatchResponse(b model.BatchModel) BatchResponse {
	subjects := []string(b.Subjects)
	if subjects == nil {
		subjects = []string{}
	}
	return BatchResponse{
		BatchID:   b.BatchID,
		BatchName: b.BatchName,
		StartYear: b.StartYear,
		EndYear:   b.EndYear,
		Type:      b.Type,
		Subjects:  subjects,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

type BatchListResponse struct {
	Batches []BatchResponse `json:"batches"`
	Count   int             `json:"count"`
}
