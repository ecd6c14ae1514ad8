package utils

import (
	"fmt"

	"tifo_back_end/internal/models"
)

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d€</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d€</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Total)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Confirmation de votre commande</h2>
		<p>Bonjour %s,</p>
		<p>Votre commande de maillots a bien été enregistrée.</p>
		<p>Numéro de suivi : <strong>%s</strong></p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Maillot</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right;">Sous-total :</td>
					<td style="padding: 10px;">%d€</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right;">Livraison :</td>
					<td style="padding: 10px;">%d€</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total :</td>
					<td style="padding: 10px; font-weight: bold;">%d€</td>
				</tr>
			</tfoot>
		</table>

		<p style="margin-top: 30px; color: #555;">
			Sportivement,<br>
			<strong>L'équipe Tifo</strong>
		</p>
	</div>
</body>
</html>`, order.CustomerName, order.TrackingID, itemsHTML, order.Subtotal, order.ShippingCost, order.Total)
}

// GenerateStatusEmailHTML génère le HTML de notification de changement de statut
func GenerateStatusEmailHTML(order models.Order, status models.OrderStatus) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Mise à jour de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">%s</h2>
		<p>Bonjour %s,</p>
		<p>%s</p>
		<p>Numéro de suivi : <strong>%s</strong></p>
		<p style="margin-top: 30px; color: #555;">
			Sportivement,<br>
			<strong>L'équipe Tifo</strong>
		</p>
	</div>
</body>
</html>`, StatusEmailSubject(status), order.CustomerName, statusMessage(order, status), order.TrackingID)
}

// StatusEmailSubject retourne le sujet d'e-mail adapté au statut
func StatusEmailSubject(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPaid:
		return "✅ Paiement confirmé - Tifo"
	case models.OrderStatusShipped:
		return "📦 Votre commande a été expédiée - Tifo"
	case models.OrderStatusDelivered:
		return "🎉 Votre commande a été livrée - Tifo"
	case models.OrderStatusCancelled:
		return "❌ Commande annulée - Tifo"
	case models.OrderStatusRefunded:
		return "💰 Remboursement effectué - Tifo"
	default:
		return "📋 Mise à jour de votre commande - Tifo"
	}
}

func statusMessage(order models.Order, status models.OrderStatus) string {
	switch status {
	case models.OrderStatusPaid:
		return "Nous avons bien reçu votre paiement."
	case models.OrderStatusShipped:
		if order.TrackingNumber != "" {
			return fmt.Sprintf("Votre colis est en route (transporteur : %s).", order.TrackingNumber)
		}
		return "Votre colis est en route."
	case models.OrderStatusDelivered:
		return "Votre commande a été livrée. Bon match !"
	case models.OrderStatusCancelled:
		return "Votre commande a été annulée."
	case models.OrderStatusRefunded:
		return "Votre remboursement a été effectué."
	default:
		return fmt.Sprintf("Le statut de votre commande est maintenant : %s.", status)
	}
}
