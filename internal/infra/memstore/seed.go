package memstore

import (
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/maintenance"
	"gearbook/internal/domain/reservation"
	"gearbook/internal/domain/user"
	"gearbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// SeedDemoData loads a small coherent dataset into the stores: equipment
// statuses agree with the seeded reservations and maintenance records, so
// the scheduling rules hold from the first request.
func SeedDemoData(
	equipmentStore *EquipmentStore,
	reservationStore *ReservationStore,
	maintenanceStore *MaintenanceStore,
	userStore *UserStore,
	now time.Time,
) error {
	staff, student, err := seedUsers(userStore, now)
	if err != nil {
		return err
	}

	items, err := seedEquipment(equipmentStore, now)
	if err != nil {
		return err
	}

	if err := seedReservations(reservationStore, items, staff, student, now); err != nil {
		return err
	}

	if err := seedMaintenance(maintenanceStore, items, staff, now); err != nil {
		return err
	}

	// Derived equipment statuses matching the seeded records.
	if err := equipmentStore.SetStatus(items.camera.ID(), equipment.StatusReserved, now); err != nil {
		return err
	}
	if err := equipmentStore.SetStatus(items.projector.ID(), equipment.StatusMaintenance, now); err != nil {
		return err
	}
	return equipmentStore.RecordMaintenance(items.printer.ID(), now.AddDate(0, -1, 0), now)
}

func seedUsers(store *UserStore, now time.Time) (staff, student *user.User, err error) {
	type spec struct {
		name       string
		email      string
		role       user.Role
		department string
	}
	specs := []spec{
		{"Admin User", "admin@university.edu", user.RoleAdmin, "IT Services"},
		{"Staff Member", "staff@university.edu", user.RoleStaff, "Engineering"},
		{"Student User", "student@university.edu", user.RoleStudent, "Computer Science"},
	}

	for _, sp := range specs {
		email, emailErr := user.NewEmail(sp.email)
		if emailErr != nil {
			return nil, nil, errs.Wrap(emailErr, "seed user email")
		}
		u, newErr := user.NewUser(sp.name, email, sp.role, sp.department, nil, now)
		if newErr != nil {
			return nil, nil, errs.Wrap(newErr, "seed user")
		}
		if addErr := store.Add(u); addErr != nil {
			return nil, nil, addErr
		}
		switch sp.role {
		case user.RoleStaff:
			staff = u
		case user.RoleStudent:
			student = u
		}
	}
	return staff, student, nil
}

type seededEquipment struct {
	microscope *equipment.Equipment
	laptop     *equipment.Equipment
	projector  *equipment.Equipment
	camera     *equipment.Equipment
	printer    *equipment.Equipment
}

func seedEquipment(store *EquipmentStore, now time.Time) (*seededEquipment, error) {
	add := func(name, category, model, serial, location, department, description string, tags []string) (*equipment.Equipment, error) {
		e, err := equipment.NewEquipment(
			name, category, model, serial, location, department, description,
			tags, "", now.AddDate(-1, 0, 0), now,
		)
		if err != nil {
			return nil, errs.Wrap(err, "seed equipment")
		}
		if err := store.Add(e); err != nil {
			return nil, err
		}
		return e, nil
	}

	microscope, err := add("Microscope", "Lab Equipment", "Olympus BX53", "OLY-2023-1234",
		"Science Building, Room 302", "Biology",
		"High-quality research microscope with digital imaging capabilities.",
		[]string{"research", "lab", "optics"})
	if err != nil {
		return nil, err
	}

	laptop, err := add("Laptop", "Computing", "MacBook Pro M2", "APPLE-2022-5678",
		"IT Storage, Room 101", "Computer Science",
		"Apple MacBook Pro with M2 chip, 16GB RAM, 512GB SSD.",
		[]string{"computing", "apple", "laptop"})
	if err != nil {
		return nil, err
	}

	projector, err := add("Projector", "Audio Visual", "Epson PowerLite", "EPS-2021-9012",
		"Lecture Hall A", "Media Services",
		"4K projector with wireless casting capabilities.",
		[]string{"presentation", "audio-visual"})
	if err != nil {
		return nil, err
	}

	camera, err := add("Digital Camera", "Photography", "Canon EOS R5", "CAN-2022-3456",
		"Media Lab, Room 205", "Journalism",
		"Professional mirrorless camera with 8K video capabilities.",
		[]string{"camera", "photography", "video"})
	if err != nil {
		return nil, err
	}

	printer, err := add("3D Printer", "Manufacturing", "Ultimaker S5", "ULT-2023-7890",
		"Engineering Lab, Room 410", "Mechanical Engineering",
		"Dual extrusion 3D printer with large build volume.",
		[]string{"3d-printing", "manufacturing", "prototyping"})
	if err != nil {
		return nil, err
	}

	return &seededEquipment{
		microscope: microscope,
		laptop:     laptop,
		projector:  projector,
		camera:     camera,
		printer:    printer,
	}, nil
}

func seedReservations(store *ReservationStore, items *seededEquipment, staff, student *user.User, now time.Time) error {
	add := func(equipmentID uuid.UUID, u *user.User, start, end time.Time, status reservation.Status, purposeText, notesText string) error {
		window, err := reservation.NewWindow(start, end)
		if err != nil {
			return errs.Wrap(err, "seed reservation window")
		}
		purpose, err := reservation.NewPurpose(purposeText)
		if err != nil {
			return errs.Wrap(err, "seed reservation purpose")
		}
		r := reservation.Reconstruct(
			uuid.New(), equipmentID, u.ID(), u.Name(),
			window, status, purpose, reservation.NewNote(notesText),
			now, now,
		)
		return store.Append(r)
	}

	// An approved booking currently in progress keeps the camera reserved.
	if err := add(items.camera.ID(), student,
		now.Add(-2*time.Hour), now.Add(6*time.Hour),
		reservation.StatusApproved, "Campus photography project", ""); err != nil {
		return err
	}

	// Future pending request on the microscope.
	if err := add(items.microscope.ID(), student,
		now.AddDate(0, 0, 3), now.AddDate(0, 0, 3).Add(8*time.Hour),
		reservation.StatusPending, "Biology research project on cell structures", ""); err != nil {
		return err
	}

	// Future approved booking for the 3D printer.
	if err := add(items.printer.ID(), staff,
		now.AddDate(0, 0, 7), now.AddDate(0, 0, 9),
		reservation.StatusApproved, "Creating mechanical prototypes for engineering class", ""); err != nil {
		return err
	}

	// Completed booking on the laptop.
	return add(items.laptop.ID(), student,
		now.AddDate(0, 0, -14), now.AddDate(0, 0, -14).Add(10*time.Hour),
		reservation.StatusCompleted, "Software development workshop", "Returned in good condition")
}

func seedMaintenance(store *MaintenanceStore, items *seededEquipment, staff *user.User, now time.Time) error {
	add := func(equipmentID uuid.UUID, scheduledAt time.Time, kind maintenance.Type, status maintenance.Status, description, notes string) error {
		r := maintenance.ReconstructRecord(
			uuid.New(), equipmentID, staff.ID(), staff.Name(),
			scheduledAt, kind, status, description, notes,
			now, now,
		)
		return store.Add(r)
	}

	// The projector is down for repair right now.
	if err := add(items.projector.ID(), now.Add(-4*time.Hour),
		maintenance.TypeCorrective, maintenance.StatusInProgress,
		"Fan making unusual noise, needs inspection and possible repair",
		"Initial assessment suggests dust accumulation in cooling system"); err != nil {
		return err
	}

	if err := add(items.microscope.ID(), now.AddDate(0, 0, 10),
		maintenance.TypePreventive, maintenance.StatusScheduled,
		"Regular 6-month maintenance check for optical alignment and cleaning", ""); err != nil {
		return err
	}

	return add(items.printer.ID(), now.AddDate(0, -1, 0),
		maintenance.TypePreventive, maintenance.StatusCompleted,
		"Regular maintenance and calibration check",
		"Replaced extruder nozzle and recalibrated bed")
}
