package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyEdit               = "edit"
	KeyLanguage           = "language"
	KeyOpen               = "open"
	KeyReveal             = "reveal"
	KeyCut                = "cut"
	KeyCopy               = "copy"
	KeyPasteHere          = "paste_here"
	KeyRename             = "rename"
	KeyDelete             = "delete"
	KeyNewFolder          = "new_folder"
	KeyAddFavorite        = "add_favorite"
	KeyRemoveFavorite     = "remove_favorite"
	KeyCopyPath           = "copy_path"
	KeyUp                 = "up"
	KeyHome               = "home"
	KeyRefresh            = "refresh"
	KeySearch             = "search"
	KeyGo                 = "go"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyEnterPath          = "enter_path"
	KeyColumnName         = "column_name"
	KeyColumnSize         = "column_size"
	KeyColumnType         = "column_type"
	KeyFolder             = "folder"
	KeyAccessDenied       = "access_denied"
	KeyAccessDeniedMsg    = "access_denied_message"
	KeyElevatePrompt      = "elevate_prompt"
	KeyElevateFailed      = "elevate_failed"
	KeyNotFound           = "not_found"
	KeyNotDirectory       = "not_directory"
	KeyConfirmDelete      = "confirm_delete"
	KeyConfirmDeleteMsg   = "confirm_delete_message"
	KeyName               = "name"
	KeyFolderName         = "folder_name"
	KeyPathCopied         = "path_copied"
	KeySearchQuery        = "search_query"
	KeySearchRoot         = "search_root"
	KeySearchNoMatches    = "search_no_matches"
	KeySearchFound        = "search_found"
	KeySearchComplete     = "search_complete"
	KeySearching          = "searching"
	KeySearchFilesOnly    = "search_files_only"
	KeySettingsSaved      = "settings_saved"
	KeyStartDirectory     = "start_directory"
	KeySearchLimit        = "search_limit"
	KeyAskBeforeDelete    = "ask_before_delete"
	KeyShowHidden         = "show_hidden"
	KeyPasteCompleted     = "paste_completed"
	KeyDeleteCompleted    = "delete_completed"
	KeyOperationFailed    = "operation_failed"
	KeyItemsSkipped       = "items_skipped"
	KeyClipboardEmpty     = "clipboard_empty"
	KeyFavoritesSaveError = "favorites_save_error"
	KeyNothingSelected    = "nothing_selected"
	KeyErrorOpeningFile   = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "File Explorer",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyEdit:               "Edit",
		KeyLanguage:           "Language",
		KeyOpen:               "Open",
		KeyReveal:             "Show in File Manager",
		KeyCut:                "Cut",
		KeyCopy:               "Copy",
		KeyPasteHere:          "Paste Here",
		KeyRename:             "Rename",
		KeyDelete:             "Delete",
		KeyNewFolder:          "New Folder",
		KeyAddFavorite:        "Add to Favorites",
		KeyRemoveFavorite:     "Remove from Favorites",
		KeyCopyPath:           "Copy Path",
		KeyUp:                 "Up",
		KeyHome:               "Home",
		KeyRefresh:            "Refresh",
		KeySearch:             "Search",
		KeyGo:                 "Go",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyEnterPath:          "Enter a directory path",
		KeyColumnName:         "Name",
		KeyColumnSize:         "Size",
		KeyColumnType:         "Type",
		KeyFolder:             "Folder",
		KeyAccessDenied:       "Access Denied",
		KeyAccessDeniedMsg:    "You do not have permission to open this folder.",
		KeyElevatePrompt:      "This folder needs administrator rights. Restart the explorer as administrator?",
		KeyElevateFailed:      "Could not restart with administrator rights",
		KeyNotFound:           "The path no longer exists",
		KeyNotDirectory:       "The path is not a folder",
		KeyConfirmDelete:      "Confirm Delete",
		KeyConfirmDeleteMsg:   "Delete %s? This cannot be undone.",
		KeyName:               "Name",
		KeyFolderName:         "Folder name",
		KeyPathCopied:         "Path copied to clipboard",
		KeySearchQuery:        "Enter search query",
		KeySearchRoot:         "Search in",
		KeySearchNoMatches:    "No matches found.",
		KeySearchFound:        "Found %d matches for '%s'.",
		KeySearchComplete:     "Search Complete",
		KeySearching:          "Searching...",
		KeySearchFilesOnly:    "Files only",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyStartDirectory:     "Start Directory",
		KeySearchLimit:        "Search Results Shown",
		KeyAskBeforeDelete:    "Ask before deleting",
		KeyShowHidden:         "Show hidden files",
		KeyPasteCompleted:     "Paste completed",
		KeyDeleteCompleted:    "Delete completed",
		KeyOperationFailed:    "Operation failed",
		KeyItemsSkipped:       "%d item(s) were skipped.",
		KeyClipboardEmpty:     "Nothing to paste",
		KeyFavoritesSaveError: "Favorites could not be saved",
		KeyNothingSelected:    "Select an item first",
		KeyErrorOpeningFile:   "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Проводник",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyEdit:               "Правка",
		KeyLanguage:           "Язык",
		KeyOpen:               "Открыть",
		KeyReveal:             "Показать в файловом менеджере",
		KeyCut:                "Вырезать",
		KeyCopy:               "Копировать",
		KeyPasteHere:          "Вставить сюда",
		KeyRename:             "Переименовать",
		KeyDelete:             "Удалить",
		KeyNewFolder:          "Новая папка",
		KeyAddFavorite:        "Добавить в избранное",
		KeyRemoveFavorite:     "Убрать из избранного",
		KeyCopyPath:           "Копировать путь",
		KeyUp:                 "Вверх",
		KeyHome:               "Домой",
		KeyRefresh:            "Обновить",
		KeySearch:             "Поиск",
		KeyGo:                 "Перейти",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyEnterPath:          "Введите путь к папке",
		KeyColumnName:         "Имя",
		KeyColumnSize:         "Размер",
		KeyColumnType:         "Тип",
		KeyFolder:             "Папка",
		KeyAccessDenied:       "Доступ запрещён",
		KeyAccessDeniedMsg:    "У вас нет прав на открытие этой папки.",
		KeyElevatePrompt:      "Для этой папки нужны права администратора. Перезапустить проводник от имени администратора?",
		KeyElevateFailed:      "Не удалось перезапустить с правами администратора",
		KeyNotFound:           "Путь больше не существует",
		KeyNotDirectory:       "Путь не является папкой",
		KeyConfirmDelete:      "Подтвердите удаление",
		KeyConfirmDeleteMsg:   "Удалить %s? Это действие нельзя отменить.",
		KeyName:               "Имя",
		KeyFolderName:         "Имя папки",
		KeyPathCopied:         "Путь скопирован в буфер обмена",
		KeySearchQuery:        "Введите запрос",
		KeySearchRoot:         "Искать в",
		KeySearchNoMatches:    "Совпадений не найдено.",
		KeySearchFound:        "Найдено совпадений: %d для '%s'.",
		KeySearchComplete:     "Поиск завершён",
		KeySearching:          "Поиск...",
		KeySearchFilesOnly:    "Только файлы",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyStartDirectory:     "Начальная папка",
		KeySearchLimit:        "Показывать результатов",
		KeyAskBeforeDelete:    "Спрашивать перед удалением",
		KeyShowHidden:         "Показывать скрытые файлы",
		KeyPasteCompleted:     "Вставка завершена",
		KeyDeleteCompleted:    "Удаление завершено",
		KeyOperationFailed:    "Операция не выполнена",
		KeyItemsSkipped:       "Пропущено элементов: %d.",
		KeyClipboardEmpty:     "Нечего вставлять",
		KeyFavoritesSaveError: "Не удалось сохранить избранное",
		KeyNothingSelected:    "Сначала выберите элемент",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Explorador de Arquivos",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyEdit:               "Editar",
		KeyLanguage:           "Idioma",
		KeyOpen:               "Abrir",
		KeyReveal:             "Mostrar no Gerenciador de Arquivos",
		KeyCut:                "Recortar",
		KeyCopy:               "Copiar",
		KeyPasteHere:          "Colar Aqui",
		KeyRename:             "Renomear",
		KeyDelete:             "Excluir",
		KeyNewFolder:          "Nova Pasta",
		KeyAddFavorite:        "Adicionar aos Favoritos",
		KeyRemoveFavorite:     "Remover dos Favoritos",
		KeyCopyPath:           "Copiar Caminho",
		KeyUp:                 "Acima",
		KeyHome:               "Início",
		KeyRefresh:            "Atualizar",
		KeySearch:             "Pesquisar",
		KeyGo:                 "Ir",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyEnterPath:          "Digite o caminho de uma pasta",
		KeyColumnName:         "Nome",
		KeyColumnSize:         "Tamanho",
		KeyColumnType:         "Tipo",
		KeyFolder:             "Pasta",
		KeyAccessDenied:       "Acesso Negado",
		KeyAccessDeniedMsg:    "Você não tem permissão para abrir esta pasta.",
		KeyElevatePrompt:      "Esta pasta exige direitos de administrador. Reiniciar o explorador como administrador?",
		KeyElevateFailed:      "Não foi possível reiniciar com direitos de administrador",
		KeyNotFound:           "O caminho não existe mais",
		KeyNotDirectory:       "O caminho não é uma pasta",
		KeyConfirmDelete:      "Confirmar Exclusão",
		KeyConfirmDeleteMsg:   "Excluir %s? Esta ação não pode ser desfeita.",
		KeyName:               "Nome",
		KeyFolderName:         "Nome da pasta",
		KeyPathCopied:         "Caminho copiado para a área de transferência",
		KeySearchQuery:        "Digite a pesquisa",
		KeySearchRoot:         "Pesquisar em",
		KeySearchNoMatches:    "Nenhum resultado encontrado.",
		KeySearchFound:        "Encontrados %d resultados para '%s'.",
		KeySearchComplete:     "Pesquisa Concluída",
		KeySearching:          "Pesquisando...",
		KeySearchFilesOnly:    "Somente arquivos",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyStartDirectory:     "Pasta Inicial",
		KeySearchLimit:        "Resultados Exibidos",
		KeyAskBeforeDelete:    "Perguntar antes de excluir",
		KeyShowHidden:         "Mostrar arquivos ocultos",
		KeyPasteCompleted:     "Colagem concluída",
		KeyDeleteCompleted:    "Exclusão concluída",
		KeyOperationFailed:    "Falha na operação",
		KeyItemsSkipped:       "%d item(ns) foram ignorados.",
		KeyClipboardEmpty:     "Nada para colar",
		KeyFavoritesSaveError: "Não foi possível salvar os favoritos",
		KeyNothingSelected:    "Selecione um item primeiro",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
	}
}
