// Package agentrepo persists delivery agent aggregates in PostgreSQL.
package agentrepo

import (
	"foodexpress/internal/core/domain/model/agent"
	"foodexpress/internal/core/domain/model/kernel"
)

// AgentDTO represents the database structure for persisting delivery agents.
type AgentDTO struct {
	ID              int64 `gorm:"primaryKey"`
	Code            string
	Name            string
	Email           string
	Phone           string
	Status          int `gorm:"index"`
	TotalDeliveries int
	TotalEarnings   float64
	TodaysEarnings  float64
	Rating          float64
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.DeliveryAgent) AgentDTO {
	return AgentDTO{
		ID:              aggregate.ID().Int64(),
		Code:            aggregate.Code(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		Status:          int(aggregate.Status()),
		TotalDeliveries: aggregate.TotalDeliveries(),
		TotalEarnings:   aggregate.TotalEarnings(),
		TodaysEarnings:  aggregate.TodaysEarnings(),
		Rating:          aggregate.Rating(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.DeliveryAgent, error) {
	return agent.RestoreDeliveryAgent(
		kernel.ID(dto.ID),
		dto.Code,
		dto.Name,
		dto.Email,
		dto.Phone,
		agent.Status(dto.Status),
		dto.TotalDeliveries,
		dto.TotalEarnings,
		dto.TodaysEarnings,
		dto.Rating,
	)
}
