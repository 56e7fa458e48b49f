package usecase

import "context"

type ListTemplatesUseCase struct {
	Gateway SignatureGateway
}

func NewListTemplatesUseCase(gateway SignatureGateway) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{Gateway: gateway}
}

// Execute maps the vendor's template list to label/value pairs for the
// quotation screen's select field. Always a fresh call, never cached.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context) ([]TemplateOption, error) {
	templates, err := uc.Gateway.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]TemplateOption, 0, len(templates))
	for _, t := range templates {
		options = append(options, TemplateOption{
			Label: t.Title,
			Value: t.TemplateID,
		})
	}

	return options, nil
}
