package listing

// FieldView is a form field prepared for the template.
type FieldView struct {
	ID          string
	Name        string
	Label       string
	Input       string
	Control     string
	Required    bool
	Placeholder string
	Value       string
	Checked     bool
	Options     []Option
	Error       string
	Wide        bool
}

// FormView is a form prepared for the template.
type FormView struct {
	Key         string
	Title       string
	Description string
	Trigger     string
	Submit      string
	Action      string
	Secondary   bool
	Open        bool
	Fields      []FieldView
}

// BuildFormView prepares form for rendering with values and errors, posting
// to action.
func BuildFormView(form Form, action string, values, errs map[string]string, lookups map[string]LookupTable) FormView {
	fv := FormView{
		Key:         form.Key,
		Title:       form.Title,
		Description: form.Description,
		Trigger:     form.Trigger,
		Submit:      form.Submit,
		Action:      action,
		Secondary:   form.Secondary,
		Fields:      make([]FieldView, 0, len(form.Fields)),
	}
	for _, field := range form.Fields {
		f := FieldView{
			ID:          form.Key + "-" + field.Name,
			Name:        field.Name,
			Label:       field.Label,
			Required:    field.Required,
			Placeholder: field.Placeholder,
			Value:       values[field.Name],
			Error:       errs[field.Name],
			Wide:        field.Wide,
			Options:     field.Options,
		}
		if field.OptionsFrom != "" {
			f.Options = lookups[field.OptionsFrom].Options()
		}
		f.Control, f.Input = controlFor(field.Kind)
		switch field.Kind {
		case KindSwitch:
			f.Checked = values[field.Name] == "true"
		case KindPassword:
			f.Value = ""
		}
		fv.Fields = append(fv.Fields, f)
	}
	return fv
}

func controlFor(kind FieldKind) (control, input string) {
	switch kind {
	case KindEmail:
		return "input", "email"
	case KindTel:
		return "input", "tel"
	case KindPassword:
		return "input", "password"
	case KindNumber, KindInteger:
		return "input", "number"
	case KindTextarea:
		return "textarea", ""
	case KindSelect:
		return "select", ""
	case KindSwitch:
		return "switch", "checkbox"
	default:
		return "input", "text"
	}
}
