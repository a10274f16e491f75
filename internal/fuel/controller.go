package fuel

import (
	"context"
	"fmt"

	"fueltrack/internal/forms"
	"fueltrack/pkg/types"

	"github.com/sirupsen/logrus"
)

// ResourceClient is the account service surface this controller needs. A
// handle is constructed per authenticated request and is already scoped to
// that user; ids passed here never cross user boundaries.
type ResourceClient interface {
	HasCar(ctx context.Context) (bool, error)
	SetCar(ctx context.Context, car types.CarData) error
	Create(ctx context.Context) (int64, error)
	Update(ctx context.Context, fuelID int64, data types.FuelData) error
	Get(ctx context.Context, fuelID int64) (*types.FuelRecord, error)
}

// ImageStore stores receipt images out of band of the resource protocol,
// which cannot carry binary payloads.
type ImageStore interface {
	Upload(ctx context.Context, userID, fuelID int64, img *forms.Attachment) error
	ObjectURL(userID, fuelID int64, thumbnail bool) string
}

// Controller runs the fuel submission workflows: validate untrusted input,
// perform the ordered remote calls, and report either a Rejected form for
// redisplay or a Completed payload. Remote failures propagate as errors and
// may leave a partially written record behind; there is no rollback.
type Controller struct {
	logger *logrus.Logger
	images ImageStore
}

func NewController(logger *logrus.Logger, images ImageStore) *Controller {
	return &Controller{logger: logger, images: images}
}

// Register handles vehicle registration. Registration is idempotent: when a
// car already exists the set-car action is skipped and the step still
// completes.
func (c *Controller) Register(ctx context.Context, rc ResourceClient, sub forms.Submission) (forms.Outcome, error) {
	form := RegistrationSchema.Validate(sub)
	if !form.Valid() {
		c.logger.WithFields(logrus.Fields{
			"form":   form.Schema.Name,
			"fields": form.InvalidFields(),
		}).Debug("not valid")
		return forms.Rejected{Form: form}, nil
	}

	hasCar, err := rc.HasCar(ctx)
	if err != nil {
		return nil, fmt.Errorf("check car: %w", err)
	}

	if !hasCar {
		car := types.CarData{
			Make:  form.String("make"),
			Model: form.String("model"),
			Year:  form.Int("year"),
		}
		if err := rc.SetCar(ctx, car); err != nil {
			return nil, fmt.Errorf("set car: %w", err)
		}
	}

	return forms.Completed{Payload: forms.Payload{}}, nil
}

// LogFuelup handles the single-step fuel-up submission.
func (c *Controller) LogFuelup(ctx context.Context, rc ResourceClient, user types.User, sub forms.Submission) (forms.Outcome, error) {
	form := FuelupSchema.Validate(sub)
	if !form.Valid() {
		c.logger.WithFields(logrus.Fields{
			"form":   form.Schema.Name,
			"fields": form.InvalidFields(),
		}).Debug("not valid")
		return forms.Rejected{Form: form}, nil
	}

	payload, err := c.createFuelRecord(ctx, rc, user, form)
	if err != nil {
		return nil, err
	}

	payload["grade"] = form.Int("grade")
	payload["chain"] = form.String("chain")

	return forms.Completed{Payload: payload}, nil
}

// StartFuelup handles step one of the two-step flow. The reduced schema
// drops grade and chain; the completion payload is merged into the next
// step's view data by the caller.
func (c *Controller) StartFuelup(ctx context.Context, rc ResourceClient, user types.User, sub forms.Submission) (forms.Outcome, error) {
	form := FuelupStep1Schema.Validate(sub)
	if !form.Valid() {
		c.logger.WithFields(logrus.Fields{
			"form":   form.Schema.Name,
			"fields": form.InvalidFields(),
		}).Debug("not valid")
		return forms.Rejected{Form: form}, nil
	}

	payload, err := c.createFuelRecord(ctx, rc, user, form)
	if err != nil {
		return nil, err
	}

	return forms.Completed{Payload: payload}, nil
}

// createFuelRecord is the shared create → update → upload sequence. The id
// must exist before the update and the upload; an upload failure after the
// update leaves the record without a receipt, which is accepted.
func (c *Controller) createFuelRecord(ctx context.Context, rc ResourceClient, user types.User, form *forms.Form) (forms.Payload, error) {
	fuelID, err := rc.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create fuel record: %w", err)
	}

	amount := form.Float("gallons")
	price := form.Float("price")

	err = rc.Update(ctx, fuelID, types.FuelData{Amount: amount, Price: price})
	if err != nil {
		return nil, fmt.Errorf("update fuel record %d: %w", fuelID, err)
	}

	// The resource protocol can't carry the image, so it goes straight to
	// object storage keyed by the record id.
	err = c.images.Upload(ctx, user.ID, fuelID, form.File("receipt"))
	if err != nil {
		return nil, fmt.Errorf("upload receipt for fuel record %d: %w", fuelID, err)
	}

	c.logger.WithFields(logrus.Fields{
		"fuel_id": fuelID,
		"amount":  amount,
		"price":   price,
	}).Info("fuel record logged")

	return forms.Payload{
		"fuel_id": fuelID,
		"amount":  amount,
		"price":   price,
		"receipt": ReceiptPath(fuelID),
	}, nil
}

// ReceiptURL resolves the storage URL for a receipt image, scoped to the
// requesting user. A record that does not exist for this user yields
// types.ErrFuelNotFound, never a generic error.
func (c *Controller) ReceiptURL(ctx context.Context, rc ResourceClient, user types.User, fuelID int64, thumbnail bool) (string, error) {
	record, err := rc.Get(ctx, fuelID)
	if err != nil {
		return "", fmt.Errorf("get fuel record %d: %w", fuelID, err)
	}
	if record == nil {
		return "", types.ErrFuelNotFound
	}

	return c.images.ObjectURL(user.ID, fuelID, thumbnail), nil
}

// ReceiptPath is the application-relative receipt URL carried in completion
// payloads.
func ReceiptPath(fuelID int64) string {
	return fmt.Sprintf("/fuel/image/%d/", fuelID)
}
