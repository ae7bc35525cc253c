package sales

import (
	"context"
	"fmt"
)

// ReceiptUseCase genera el recibo PDF de una venta. Aplica el mismo recorte
// por rol que la consulta: el rol "user" solo descarga recibos propios.
type ReceiptUseCase struct {
	query     *QueryUseCase
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(query *QueryUseCase, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{query: query, generator: generator}
}

// DownloadReceiptPDF recupera la venta, verifica permisos y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la venta no existe.
//   - domain.ErrForbidden        si el caller no puede ver esa venta.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, callerUsername, callerRole, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.query.GetSaleEntity(ctx, callerUsername, callerRole, saleID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, sale)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("venta_%s.pdf", sale.BillNo)
	return pdfBytes, filename, nil
}
