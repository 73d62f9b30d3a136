package database

import (
	"time"

	"github.com/xavierca1/soluvia-crm/internal/entity"
)

// Dados de demonstração da loja. Carregados quando CRM_SEED_DATA=true.

var brt = time.FixedZone("BRT", -3*60*60)

func at(value string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, brt); err == nil {
			return t
		}
	}
	panic("seed: data inválida " + value)
}

func money(v float64) *float64 { return &v }

func SeedLeads() []entity.Lead {
	return []entity.Lead{
		{
			ID: "1", Name: "João Silva", Phone: "(11) 99999-1234",
			LastContact: at("2024-01-15 14:30"), ContactReason: "Interesse em iPhone 15",
			Source: entity.SourceWhatsApp, Status: entity.LeadCold, CreatedAt: at("2024-01-10"),
			History: []entity.ContactHistory{
				{ID: "1", Date: at("2024-01-15 14:30"), Type: entity.ContactMessage, Description: "Cliente perguntou sobre preço do iPhone 15", Outcome: "Enviado valores e condições"},
				{ID: "2", Date: at("2024-01-10 09:15"), Type: entity.ContactCall, Description: "Primeiro contato via WhatsApp", Outcome: "Demonstrou interesse"},
			},
		},
		{
			ID: "2", Name: "Maria Santos", Phone: "(11) 98888-5678",
			LastContact: at("2024-01-16 10:15"), ContactReason: "Capinha e película para Samsung S24",
			Source: entity.SourceBalcao, Status: entity.LeadTalking, CreatedAt: at("2024-01-16"),
			History: []entity.ContactHistory{
				{ID: "3", Date: at("2024-01-16 10:15"), Type: entity.ContactVisit, Description: "Cliente veio na loja ver acessórios", Outcome: "Ficou de decidir até amanhã"},
			},
		},
		{
			ID: "3", Name: "Pedro Costa", Phone: "(11) 97777-9012",
			LastContact: at("2024-01-16 16:45"), ContactReason: "Troca de iPhone 13 por iPhone 15",
			Source: entity.SourceInstagram, Status: entity.LeadHot, CreatedAt: at("2024-01-14"),
			History: []entity.ContactHistory{
				{ID: "4", Date: at("2024-01-16 16:45"), Type: entity.ContactCall, Description: "Negociação da troca", Outcome: "Aceitou proposta, vem buscar amanhã"},
				{ID: "5", Date: at("2024-01-15 11:20"), Type: entity.ContactMessage, Description: "Enviou fotos do iPhone 13 atual", Outcome: "Avaliação realizada"},
			},
		},
		{
			ID: "4", Name: "Ana Oliveira", Phone: "(11) 96666-3456",
			LastContact: at("2024-01-14 09:30"), ContactReason: "Orçamento para fone Bluetooth",
			Source: entity.SourceWhatsApp, Status: entity.LeadCold, CreatedAt: at("2024-01-14"),
			History: []entity.ContactHistory{
				{ID: "6", Date: at("2024-01-14 09:30"), Type: entity.ContactMessage, Description: "Pediu orçamento de fones sem fio", Outcome: "Enviado catálogo"},
			},
		},
		{
			ID: "5", Name: "Carlos Ferreira", Phone: "(11) 95555-7890",
			LastContact: at("2024-01-16 13:20"), ContactReason: "Reparo de tela iPhone 12",
			Source: entity.SourceBalcao, Status: entity.LeadTalking, CreatedAt: at("2024-01-16"),
			History: []entity.ContactHistory{
				{ID: "7", Date: at("2024-01-16 13:20"), Type: entity.ContactVisit, Description: "Trouxe iPhone com tela quebrada", Outcome: "Orçamento aprovado, reparo em andamento"},
			},
		},
		{
			ID: "6", Name: "Fernanda Lima", Phone: "(11) 94444-2468",
			LastContact: at("2024-01-15 18:00"), ContactReason: "Interesse em Galaxy Z Flip",
			Source: entity.SourceInstagram, Status: entity.LeadHot, CreatedAt: at("2024-01-13"),
			History: []entity.ContactHistory{
				{ID: "8", Date: at("2024-01-15 18:00"), Type: entity.ContactCall, Description: "Negociação final do preço", Outcome: "Aceita parcelamento, confirma compra"},
			},
		},
	}
}

type seedClient struct {
	id, name, email, phone string
	status                 entity.ClientStatus
	source                 entity.ClientSource
	createdAt, lastContact string
	history                []entity.ClientHistory
}

// SeedClients monta os clientes com totalPurchases derivado do histórico.
func SeedClients() []entity.Client {
	seeds := []seedClient{
		{"1", "Ana Clara Santos", "ana.santos@gmail.com", "(11) 99876-5432", entity.ClientActive, entity.ClientSourceWhatsApp, "2024-01-10", "2024-01-25", []entity.ClientHistory{
			{ID: "1", Date: at("2024-01-25"), Type: entity.ClientHistoryPurchase, Description: "Compra iPhone 15 Pro Max", Outcome: "Venda finalizada", Value: money(3200)},
		}},
		{"2", "Carlos Eduardo Silva", "carlos.silva@outlook.com", "(11) 98765-4321", entity.ClientLead, entity.ClientSourceInstagram, "2024-01-20", "2024-01-24", []entity.ClientHistory{
			{ID: "2", Date: at("2024-01-24"), Type: entity.ClientHistoryMessage, Description: "Interesse em Galaxy S24", Outcome: "Aguardando resposta"},
		}},
		{"3", "Mariana Costa Lima", "mariana.lima@yahoo.com", "(11) 97654-3210", entity.ClientActive, entity.ClientSourceBalcao, "2024-01-15", "2024-01-23", []entity.ClientHistory{
			{ID: "3", Date: at("2024-01-23"), Type: entity.ClientHistorySupport, Description: "Dúvida sobre garantia AirPods", Outcome: "Problema resolvido"},
			{ID: "13", Date: at("2024-01-15"), Type: entity.ClientHistoryPurchase, Description: "AirPods Pro 2", Outcome: "Venda finalizada", Value: money(1500)},
		}},
		{"4", "Roberto Ferreira", "roberto.ferreira@empresa.com", "(11) 96543-2109", entity.ClientInactive, entity.ClientSourceSite, "2024-01-05", "2024-01-18", []entity.ClientHistory{
			{ID: "4", Date: at("2024-01-18"), Type: entity.ClientHistoryCall, Description: "Tentativa de reativação", Outcome: "Não atendeu"},
			{ID: "14", Date: at("2024-01-05"), Type: entity.ClientHistoryPurchase, Description: "Carregador Original", Outcome: "Venda finalizada", Value: money(450)},
		}},
		{"5", "Juliana Oliveira", "juliana.oliveira@hotmail.com", "(11) 95432-1098", entity.ClientActive, entity.ClientSourceIndicacao, "2024-01-12", "2024-01-22", []entity.ClientHistory{
			{ID: "5", Date: at("2024-01-22"), Type: entity.ClientHistoryPurchase, Description: "MacBook Air M2", Outcome: "Venda concluída", Value: money(2800)},
		}},
		{"6", "Pedro Henrique Moura", "pedro.moura@gmail.com", "(11) 94321-0987", entity.ClientLead, entity.ClientSourceWhatsApp, "2024-01-18", "2024-01-21", []entity.ClientHistory{
			{ID: "6", Date: at("2024-01-21"), Type: entity.ClientHistoryMessage, Description: "Orçamento smartwatch", Outcome: "Em negociação"},
		}},
		{"7", "Fernanda Almeida", "fernanda.almeida@email.com", "(11) 93210-9876", entity.ClientActive, entity.ClientSourceBalcao, "2024-01-08", "2024-01-20", []entity.ClientHistory{
			{ID: "7", Date: at("2024-01-20"), Type: entity.ClientHistoryVisit, Description: "Reparo de tela iPhone", Outcome: "Serviço realizado"},
			{ID: "15", Date: at("2024-01-08"), Type: entity.ClientHistoryPurchase, Description: "Samsung Galaxy S23", Outcome: "Venda finalizada", Value: money(1200)},
		}},
		{"8", "Lucas Rodrigues", "lucas.rodrigues@tech.com", "(11) 92109-8765", entity.ClientInactive, entity.ClientSourceInstagram, "2024-01-03", "2024-01-15", []entity.ClientHistory{
			{ID: "8", Date: at("2024-01-15"), Type: entity.ClientHistoryMessage, Description: "Não respondeu follow-up", Outcome: "Sem retorno"},
			{ID: "16", Date: at("2024-01-03"), Type: entity.ClientHistoryPurchase, Description: "Película de Vidro", Outcome: "Venda finalizada", Value: money(89.90)},
		}},
		{"9", "Camila Souza", "camila.souza@corp.com.br", "(11) 91098-7654", entity.ClientActive, entity.ClientSourceSite, "2024-01-14", "2024-01-19", []entity.ClientHistory{
			{ID: "9", Date: at("2024-01-19"), Type: entity.ClientHistoryPurchase, Description: "iPad Pro + Apple Pencil", Outcome: "Venda finalizada", Value: money(5200)},
		}},
		{"10", "Daniel Barbosa", "daniel.barbosa@outlook.com", "(11) 90987-6543", entity.ClientLead, entity.ClientSourceIndicacao, "2024-01-22", "2024-01-24", []entity.ClientHistory{
			{ID: "10", Date: at("2024-01-24"), Type: entity.ClientHistoryCall, Description: "Primeiro contato", Outcome: "Demonstrou interesse"},
		}},
		{"11", "Beatriz Cardoso", "beatriz.cardoso@gmail.com", "(11) 98876-5431", entity.ClientActive, entity.ClientSourceWhatsApp, "2024-01-11", "2024-01-18", []entity.ClientHistory{
			{ID: "11", Date: at("2024-01-18"), Type: entity.ClientHistoryPurchase, Description: "Capinha + película iPhone", Outcome: "Venda concluída", Value: money(950)},
		}},
		{"12", "Thiago Mendes", "thiago.mendes@empresa.net", "(11) 97765-4320", entity.ClientInactive, entity.ClientSourceBalcao, "2024-01-07", "2024-01-16", []entity.ClientHistory{
			{ID: "12", Date: at("2024-01-16"), Type: entity.ClientHistoryVisit, Description: "Visitou loja, não comprou", Outcome: "Sem interesse no momento"},
			{ID: "17", Date: at("2024-01-07"), Type: entity.ClientHistoryPurchase, Description: "Fone de Ouvido", Outcome: "Venda finalizada", Value: money(320)},
		}},
	}

	clients := make([]entity.Client, 0, len(seeds))
	for _, s := range seeds {
		clients = append(clients, entity.Client{
			ID:             s.id,
			Name:           s.name,
			Email:          s.email,
			Phone:          s.phone,
			Status:         s.status,
			Source:         s.source,
			CreatedAt:      at(s.createdAt),
			LastContact:    at(s.lastContact),
			History:        s.history,
			TotalPurchases: entity.SumPurchases(s.history),
		})
	}
	return clients
}

func SeedPreSaleFollowUps() []entity.PreSaleFollowUp {
	return []entity.PreSaleFollowUp{
		{ID: "1", ClientName: "João Silva", Phone: "(11) 99999-1234", OriginalReason: "Interesse em iPhone 15", CreatedAt: at("2024-01-16 14:30"), FollowUpType: entity.FollowUp1H},
		{ID: "2", ClientName: "Maria Santos", Phone: "(11) 98888-5678", OriginalReason: "Orçamento Galaxy S24", CreatedAt: at("2024-01-16 16:00"), FollowUpType: entity.FollowUp1H},
		{ID: "3", ClientName: "Pedro Costa", Phone: "(11) 97777-9012", OriginalReason: "Capinha iPhone 13", CreatedAt: at("2024-01-15 10:00"), FollowUpType: entity.FollowUp24H},
		{ID: "4", ClientName: "Ana Oliveira", Phone: "(11) 96666-3456", OriginalReason: "Fone Bluetooth", CreatedAt: at("2024-01-14 15:30"), FollowUpType: entity.FollowUp48H},
		{ID: "5", ClientName: "Carlos Ferreira", Phone: "(11) 95555-7890", OriginalReason: "Troca de celular", CreatedAt: at("2024-01-10 09:00"), FollowUpType: entity.FollowUp7Days},
	}
}

func SeedPostSaleFollowUps() []entity.PostSaleFollowUp {
	return []entity.PostSaleFollowUp{
		{ID: "1", ClientName: "Roberto Lima", Phone: "(11) 94444-2468", ProductPurchased: "iPhone 15 Pro Max", PurchaseDate: at("2024-01-16 10:30"), FollowUpType: entity.FollowUp24H},
		{ID: "2", ClientName: "Fernanda Costa", Phone: "(11) 93333-1357", ProductPurchased: "Galaxy S24 Ultra", PurchaseDate: at("2024-01-15 14:15"), FollowUpType: entity.FollowUp24H},
		{ID: "3", ClientName: "Lucas Martins", Phone: "(11) 92222-8642", ProductPurchased: "AirPods Pro 2", PurchaseDate: at("2024-01-02 16:45"), FollowUpType: entity.FollowUp14Days, Completed: true},
		{ID: "4", ClientName: "Patricia Oliveira", Phone: "(11) 91111-9753", ProductPurchased: "iPhone 14 Plus", PurchaseDate: at("2023-12-17 11:20"), FollowUpType: entity.FollowUp30Days},
	}
}

func SeedGoal() entity.Goal {
	return entity.Goal{
		ID:               "1",
		CompanyID:        "1",
		LeadsFriosMeta:   500,
		LeadsQuentesMeta: 200,
		ConversasMeta:    300,
		PeriodoInicio:    at("2024-08-01"),
		PeriodoFim:       at("2024-08-31"),
		CreatedAt:        at("2024-08-01"),
	}
}

func SeedCompany() entity.CompanySettings {
	return entity.CompanySettings{
		ID:        "1",
		Nome:      "SOLUV.IA Store",
		CNPJ:      "12.345.678/0001-90",
		Endereco:  "Rua das Tecnologias, 123 - Centro, São Paulo - SP",
		Telefone:  "(11) 98765-4321",
		Email:     "contato@soluvia.com.br",
		CreatedAt: at("2024-01-01"),
		UpdatedAt: at("2024-01-01"),
	}
}

func SeedWhatsApp() entity.WhatsAppConfig {
	return entity.WhatsAppConfig{
		ID:          "1",
		CompanyID:   "1",
		PhoneNumber: "+5511987654321",
		Status:      entity.WhatsAppDisconnected,
	}
}

func SeedCatalog() entity.Catalog {
	names := []string{
		"iPhone 15 Pro Max", "iPhone 15 Pro", "iPhone 15", "iPhone 14",
		"Samsung Galaxy S24", "Samsung Galaxy S23", "Capinha Premium",
		"Película de Vidro", "Carregador Original", "Fone de Ouvido", "Outros",
	}
	products := make([]entity.Product, 0, len(names))
	for _, name := range names {
		products = append(products, *entity.NewProduct(name))
	}
	return entity.Catalog{
		Products:     products,
		Salespersons: []string{"Carlos Silva", "Maria Santos", "João Oliveira", "Ana Costa", "Pedro Souza"},
	}
}
