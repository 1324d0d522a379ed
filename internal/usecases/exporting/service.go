// Package exporting gera arquivos CSV a partir dos registros decorados das
// listagens, com cabeçalhos em português prontos para planilha.
package exporting

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/vfg2006/talent-commerce-api/internal/domain"
)

const dateLayout = "02/01/2006"

// Column descreve uma coluna exportável: o cabeçalho e como extrair o valor
// de um registro.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// WriteCSV serializa os registros com as colunas informadas.
func WriteCSV[T any](records []T, columns []Column[T]) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := w.Write(headers); err != nil {
		return nil, err
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for i, col := range columns {
			row[i] = col.Value(record)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatCurrency(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// SaleColumns são as colunas da exportação de vendas.
func SaleColumns() []Column[domain.SaleWithNames] {
	return []Column[domain.SaleWithNames]{
		{Header: "Data", Value: func(s domain.SaleWithNames) string { return formatDate(s.SaleDate) }},
		{Header: "Talento", Value: func(s domain.SaleWithNames) string { return s.TalentName }},
		{Header: "Conta", Value: func(s domain.SaleWithNames) string { return s.AccountName }},
		{Header: "GMV", Value: func(s domain.SaleWithNames) string { return formatCurrency(s.GMV) }},
		{Header: "Comissão Estimada", Value: func(s domain.SaleWithNames) string { return formatCurrency(s.EstimatedCommission) }},
		{Header: "Visualizações", Value: func(s domain.SaleWithNames) string { return strconv.Itoa(s.ProductViews) }},
		{Header: "Cliques", Value: func(s domain.SaleWithNames) string { return strconv.Itoa(s.ProductClicks) }},
	}
}

// PostColumns são as colunas da exportação de postagens promocionais.
func PostColumns() []Column[domain.ProductPostWithNames] {
	return []Column[domain.ProductPostWithNames]{
		{Header: "Data", Value: func(p domain.ProductPostWithNames) string { return formatDate(p.PostedAt) }},
		{Header: "Produto", Value: func(p domain.ProductPostWithNames) string { return p.ProductName }},
		{Header: "Loja", Value: func(p domain.ProductPostWithNames) string { return p.StoreName }},
		{Header: "Conta", Value: func(p domain.ProductPostWithNames) string { return p.AccountName }},
		{Header: "Talento", Value: func(p domain.ProductPostWithNames) string { return p.TalentName }},
		{Header: "Vídeo", Value: func(p domain.ProductPostWithNames) string { return p.VideoURL }},
	}
}

// ProductSaleColumns são as colunas da exportação de vendas por produto.
func ProductSaleColumns() []Column[domain.ProductSaleWithNames] {
	return []Column[domain.ProductSaleWithNames]{
		{Header: "Data", Value: func(s domain.ProductSaleWithNames) string { return formatDate(s.Date) }},
		{Header: "Loja", Value: func(s domain.ProductSaleWithNames) string { return s.StoreName }},
		{Header: "Produto", Value: func(s domain.ProductSaleWithNames) string { return s.ProductName }},
		{Header: "Quantidade", Value: func(s domain.ProductSaleWithNames) string { return strconv.Itoa(s.Quantity) }},
	}
}

// ContentCountColumns são as colunas da exportação de volume de conteúdo.
func ContentCountColumns() []Column[domain.ContentCountWithNames] {
	return []Column[domain.ContentCountWithNames]{
		{Header: "Data", Value: func(c domain.ContentCountWithNames) string { return formatDate(c.RecordedAt) }},
		{Header: "Talento", Value: func(c domain.ContentCountWithNames) string { return c.TalentName }},
		{Header: "Loja", Value: func(c domain.ContentCountWithNames) string { return c.StoreName }},
		{Header: "Conteúdos", Value: func(c domain.ContentCountWithNames) string { return strconv.Itoa(c.Count) }},
	}
}
