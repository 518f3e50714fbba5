package levelinghandlers

import (
	"context"
	"errors"

	levelingevents "github.com/aaravmaloo/blue-moon/app/events/leveling"
	levelingdb "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// Note and todo handlers share the item service operations; only the kind
// and the outbound topics differ.

func (h *LevelingHandlers) HandleNoteAdd(ctx context.Context, payload *levelingevents.ItemAddPayloadV1) ([]handlerwrapper.Result, error) {
	return h.handleItemAdd(ctx, levelingdb.ItemNote, payload, levelingevents.NoteAddedV1, levelingevents.NoteAddFailedV1)
}

func (h *LevelingHandlers) HandleTodoAdd(ctx context.Context, payload *levelingevents.ItemAddPayloadV1) ([]handlerwrapper.Result, error) {
	return h.handleItemAdd(ctx, levelingdb.ItemTodo, payload, levelingevents.TodoAddedV1, levelingevents.TodoAddFailedV1)
}

func (h *LevelingHandlers) HandleNoteRemove(ctx context.Context, payload *levelingevents.ItemRemovePayloadV1) ([]handlerwrapper.Result, error) {
	return h.handleItemRemove(ctx, levelingdb.ItemNote, payload, levelingevents.NoteRemovedV1, levelingevents.NoteRemoveFailedV1)
}

func (h *LevelingHandlers) HandleTodoRemove(ctx context.Context, payload *levelingevents.ItemRemovePayloadV1) ([]handlerwrapper.Result, error) {
	return h.handleItemRemove(ctx, levelingdb.ItemTodo, payload, levelingevents.TodoRemovedV1, levelingevents.TodoRemoveFailedV1)
}

func (h *LevelingHandlers) HandleNotesList(ctx context.Context, payload *levelingevents.ItemsListRequestPayloadV1) ([]handlerwrapper.Result, error) {
	return h.handleItemsList(ctx, levelingdb.ItemNote, payload, levelingevents.NotesListedV1, levelingevents.NotesListFailedV1)
}

func (h *LevelingHandlers) HandleTodosList(ctx context.Context, payload *levelingevents.ItemsListRequestPayloadV1) ([]handlerwrapper.Result, error) {
	return h.handleItemsList(ctx, levelingdb.ItemTodo, payload, levelingevents.TodosListedV1, levelingevents.TodosListFailedV1)
}

func (h *LevelingHandlers) handleItemAdd(ctx context.Context, kind string, payload *levelingevents.ItemAddPayloadV1, successTopic, failureTopic string) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.AddItem(ctx, kind, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result, successTopic, failureTopic), nil
}

func (h *LevelingHandlers) handleItemRemove(ctx context.Context, kind string, payload *levelingevents.ItemRemovePayloadV1, successTopic, failureTopic string) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RemoveItem(ctx, kind, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result, successTopic, failureTopic), nil
}

func (h *LevelingHandlers) handleItemsList(ctx context.Context, kind string, payload *levelingevents.ItemsListRequestPayloadV1, successTopic, failureTopic string) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ListItems(ctx, kind, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result, successTopic, failureTopic), nil
}
